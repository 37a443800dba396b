package secondary

import (
	"context"
	"time"

	"github.com/qudous44/tiktok-server/internal/domain"
)

// DeliveryRecord is the observational record published after every forward
// attempt. It is a side channel for auditing and analytics, never a retry
// queue: nothing reads it back into the pipeline.
type DeliveryRecord struct {
	EventID     string             `json:"event_id"`
	OrderID     int64              `json:"order_id"`
	Disposition domain.Disposition `json:"disposition"`
	Endpoint    string             `json:"endpoint,omitempty"`
	Error       string             `json:"error,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// EventMirror defines the secondary port for publishing delivery records.
type EventMirror interface {
	// Publish emits one delivery record. Failures must not affect the
	// webhook response; callers log and move on.
	Publish(ctx context.Context, record DeliveryRecord) error

	// Close releases any resources held by the mirror.
	Close() error
}
