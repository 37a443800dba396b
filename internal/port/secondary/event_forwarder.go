package secondary

import (
	"context"

	"github.com/qudous44/tiktok-server/internal/domain/entity"
)

// ForwardReceipt describes a successful delivery attempt.
type ForwardReceipt struct {
	// Endpoint is the candidate URL that accepted the event.
	Endpoint string

	// RequestID is the platform-assigned identifier, when present.
	RequestID string

	// DryRun is true when the event was logged instead of sent.
	DryRun bool
}

// EventForwarder defines the secondary port for delivering a conversion
// event to the advertising platform. Implementations must be safe for
// concurrent use; each call is one independent delivery.
type EventForwarder interface {
	// Forward sends the event and returns a receipt on acceptance.
	Forward(ctx context.Context, event *entity.ConversionEvent) (*ForwardReceipt, error)

	// Close releases any resources held by the forwarder.
	Close() error
}
