package kafkamirror

import (
	"context"

	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// Nop implements secondary.EventMirror by discarding records. Wired when no
// brokers or topic are configured, which is the default.
type Nop struct{}

// NewNop creates a mirror that drops every record.
func NewNop() secondary.EventMirror {
	return Nop{}
}

// Publish discards the record.
func (Nop) Publish(context.Context, secondary.DeliveryRecord) error {
	return nil
}

// Close is a no-op.
func (Nop) Close() error {
	return nil
}
