package http

// WebhookResponse is returned for every accepted webhook, forwarded or
// intentionally skipped.
type WebhookResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id,omitempty"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by the health check endpoint. Config reports
// presence of required values only, never their contents.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Config    map[string]bool   `json:"config"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// RoutesResponse describes the available routes at the root path.
type RoutesResponse struct {
	Service string            `json:"service"`
	Routes  map[string]string `json:"routes"`
}
