package tiktokforwarder

import (
	"context"

	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/domain/entity"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// DryRun implements secondary.EventForwarder without network I/O. It is
// wired instead of the real forwarder in local mode so the rest of the
// pipeline keeps a single delivery path.
type DryRun struct {
	logger *zap.Logger
}

// NewDryRun creates a forwarder that logs events instead of sending them.
func NewDryRun(logger *zap.Logger) secondary.EventForwarder {
	return &DryRun{logger: logger.Named("dry-run-forwarder")}
}

// Forward logs the event and reports a dry-run receipt.
func (d *DryRun) Forward(_ context.Context, event *entity.ConversionEvent) (*secondary.ForwardReceipt, error) {
	d.logger.Info("dry run, event not sent",
		zap.String("event_id", event.EventID),
		zap.Float64("value", event.Properties.Value),
		zap.String("currency", event.Properties.Currency),
		zap.Int("contents", len(event.Properties.Contents)),
	)
	return &secondary.ForwardReceipt{DryRun: true}, nil
}

// Close is a no-op.
func (d *DryRun) Close() error {
	return nil
}
