package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/domain"
	"github.com/qudous44/tiktok-server/internal/domain/entity"
	"github.com/qudous44/tiktok-server/internal/domain/signature"
	"github.com/qudous44/tiktok-server/internal/port/primary"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// Options holds the static policy knobs for webhook processing.
type Options struct {
	// WebhookSecret is the shared secret signatures are checked against.
	WebhookSecret string

	// EnforceSignatures rejects deliveries whose signature is absent or
	// wrong. Disabled only in the explicit local mode.
	EnforceSignatures bool

	// SkipCancelledOrders filters cancelled and refunded orders alongside
	// test orders.
	SkipCancelledOrders bool

	// Build parameterizes event construction.
	Build BuildOptions
}

// WebhookService orchestrates one webhook delivery: verify, parse, filter,
// build, forward. It holds no per-request state; concurrent deliveries are
// independent.
type WebhookService struct {
	opts      Options
	forwarder secondary.EventForwarder
	mirror    secondary.EventMirror
	logger    *zap.Logger
	now       func() time.Time
}

// NewWebhookService creates a WebhookService with its dependencies injected.
func NewWebhookService(
	opts Options,
	forwarder secondary.EventForwarder,
	mirror secondary.EventMirror,
	logger *zap.Logger,
) *WebhookService {
	return &WebhookService{
		opts:      opts,
		forwarder: forwarder,
		mirror:    mirror,
		logger:    logger.Named("webhook-service"),
		now:       time.Now,
	}
}

// ProcessOrderWebhook implements primary.OrderWebhookService. The forwarder
// is invoked at most once per call; there is no in-process retry, the
// storefront's own webhook redelivery is the only retry mechanism.
func (s *WebhookService) ProcessOrderWebhook(ctx context.Context, rawBody []byte, signatureHeader string) (primary.WebhookResult, error) {
	if s.opts.EnforceSignatures && !signature.Verify(rawBody, signatureHeader, s.opts.WebhookSecret) {
		return primary.WebhookResult{}, domain.ErrInvalidSignature
	}

	var order entity.Order
	if err := json.Unmarshal(rawBody, &order); err != nil {
		return primary.WebhookResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	eventID := strconv.FormatInt(order.ID, 10)
	logger := s.logger.With(zap.String("event_id", eventID))

	if order.IsTest() {
		logger.Info("skipping test order")
		return s.skip(ctx, &order, eventID, domain.DispositionSkippedTest), nil
	}
	if s.opts.SkipCancelledOrders && order.IsCancelled() {
		logger.Info("skipping cancelled order",
			zap.String("financial_status", order.FinancialStatus),
		)
		return s.skip(ctx, &order, eventID, domain.DispositionSkippedCancelled), nil
	}

	event, err := BuildEvent(&order, s.now(), s.opts.Build)
	if err != nil {
		logger.Warn("rejecting order", zap.Error(err))
		return primary.WebhookResult{}, err
	}

	receipt, err := s.forwarder.Forward(ctx, event)
	if err != nil {
		logger.Error("forward failed", zap.Error(err))
		s.publish(ctx, secondary.DeliveryRecord{
			EventID:     eventID,
			OrderID:     order.ID,
			Disposition: domain.DispositionFailed,
			Error:       err.Error(),
			OccurredAt:  s.now().UTC(),
		})
		return primary.WebhookResult{}, err
	}

	disposition := domain.DispositionForwarded
	if receipt.DryRun {
		disposition = domain.DispositionDryRun
	}
	logger.Info("order forwarded",
		zap.String("disposition", string(disposition)),
		zap.String("endpoint", receipt.Endpoint),
		zap.String("request_id", receipt.RequestID),
	)
	s.publish(ctx, secondary.DeliveryRecord{
		EventID:     eventID,
		OrderID:     order.ID,
		Disposition: disposition,
		Endpoint:    receipt.Endpoint,
		OccurredAt:  s.now().UTC(),
	})

	return primary.WebhookResult{
		Disposition: disposition,
		EventID:     eventID,
		Receipt:     receipt,
	}, nil
}

func (s *WebhookService) skip(ctx context.Context, order *entity.Order, eventID string, disposition domain.Disposition) primary.WebhookResult {
	s.publish(ctx, secondary.DeliveryRecord{
		EventID:     eventID,
		OrderID:     order.ID,
		Disposition: disposition,
		OccurredAt:  s.now().UTC(),
	})
	return primary.WebhookResult{Disposition: disposition, EventID: eventID}
}

// publish emits a delivery record. Mirror failures are logged and swallowed:
// the audit stream must never change the webhook response.
func (s *WebhookService) publish(ctx context.Context, record secondary.DeliveryRecord) {
	if err := s.mirror.Publish(ctx, record); err != nil {
		s.logger.Warn("failed to publish delivery record",
			zap.String("event_id", record.EventID),
			zap.Error(err),
		)
	}
}
