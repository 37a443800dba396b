package primary

import (
	"context"

	"github.com/qudous44/tiktok-server/internal/domain"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// WebhookResult is the terminal outcome of one processed webhook.
type WebhookResult struct {
	Disposition domain.Disposition
	EventID     string
	Receipt     *secondary.ForwardReceipt
}

// OrderWebhookService defines the primary port for webhook processing
// exposed to driving adapters (the HTTP handler).
type OrderWebhookService interface {
	// ProcessOrderWebhook verifies, parses, filters, and forwards one
	// webhook delivery. rawBody is the unparsed request body;
	// signatureHeader is the digest from the signature header, empty when
	// absent. Errors map to domain sentinels for the HTTP boundary.
	ProcessOrderWebhook(ctx context.Context, rawBody []byte, signatureHeader string) (WebhookResult, error)
}
