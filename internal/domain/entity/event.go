package entity

// ConversionEvent is the outbound "Purchase" payload in the events API track
// shape. It is built fresh per webhook and discarded after the forward
// attempt; the pixel code is attached by the forwarder, not stored here.
type ConversionEvent struct {
	Event      string          `json:"event"`
	EventID    string          `json:"event_id"`
	Timestamp  int64           `json:"timestamp"`
	Context    EventContext    `json:"context"`
	Properties EventProperties `json:"properties"`
}

// EventContext carries page and user matching data.
type EventContext struct {
	Page      PageContext `json:"page"`
	User      UserContext `json:"user"`
	UserAgent string      `json:"user_agent,omitempty"`
	IP        string      `json:"ip,omitempty"`
}

// PageContext identifies where the conversion happened.
type PageContext struct {
	URL string `json:"url"`
}

// UserContext carries hashed identifiers only. Raw PII never leaves the
// process.
type UserContext struct {
	HashedEmails []string `json:"email,omitempty"`
	HashedPhones []string `json:"phone_number,omitempty"`
}

// EventProperties carries the order value and its contents.
type EventProperties struct {
	Contents []ContentItem `json:"contents"`
	Currency string        `json:"currency"`
	Value    float64       `json:"value"`
	Category string        `json:"category,omitempty"`
}

// ContentItem is one line item projected into the events API schema.
type ContentItem struct {
	ContentID   string  `json:"content_id"`
	ContentType string  `json:"content_type"`
	ContentName string  `json:"content_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
