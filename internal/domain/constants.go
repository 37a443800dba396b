package domain

import "time"

const (
	// EventNamePurchase is the conversion event name reported for every forwarded order.
	EventNamePurchase = "Purchase"

	// ContentTypeProduct is the content_type assigned to every mapped line item.
	ContentTypeProduct = "product"

	// UndefinedContentID is produced when a line item carries none of the
	// identifier fields. Callers must treat it as a data-quality signal.
	UndefinedContentID = "undefined"

	// SignatureHeader carries the base64 HMAC-SHA256 digest of the raw webhook body.
	SignatureHeader = "X-Shopify-Hmac-Sha256"

	// AccessTokenHeader authenticates outbound calls to the events API.
	AccessTokenHeader = "Access-Token"

	// SuccessCode is the application-level status the events API returns for
	// an accepted event. Any other code is a rejection.
	SuccessCode = 0

	// DefaultForwardTimeout bounds a single outbound delivery attempt.
	DefaultForwardTimeout = 12 * time.Second
)

// Timestamp sources for the reported event time.
const (
	// TimestampSourceReceipt stamps events with the time the webhook was processed.
	TimestampSourceReceipt = "receipt"

	// TimestampSourceOrder stamps events with the order's creation time when available.
	TimestampSourceOrder = "order"
)
