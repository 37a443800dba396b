package main

import (
	"net/http"

	"go.uber.org/dig"
	"go.uber.org/zap"

	httphandler "github.com/qudous44/tiktok-server/internal/adapter/primary/http"
	"github.com/qudous44/tiktok-server/internal/adapter/secondary/kafkamirror"
	"github.com/qudous44/tiktok-server/internal/adapter/secondary/tiktokforwarder"
	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/domain/service"
	"github.com/qudous44/tiktok-server/internal/port/primary"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

func buildContainer() (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(config.New); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Secondary Adapters (infrastructure) ---

	// Event forwarder: the real events API client, or the dry-run variant
	// in local mode where outbound calls are skipped by design.
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) secondary.EventForwarder {
		if !cfg.OutboundEnabled() {
			return tiktokforwarder.NewDryRun(logger)
		}
		return tiktokforwarder.New(cfg, logger)
	}); err != nil {
		return nil, err
	}

	// Delivery-record mirror: Kafka when configured, otherwise a no-op.
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) secondary.EventMirror {
		if cfg.MirrorEnabled() {
			return kafkamirror.New(cfg, logger)
		}
		return kafkamirror.NewNop()
	}); err != nil {
		return nil, err
	}

	// Health checks. The pipeline has no always-on external dependency, so
	// the health endpoint reports configuration presence only.
	if err := c.Provide(func() []secondary.HealthChecker {
		return nil
	}); err != nil {
		return nil, err
	}

	// --- Domain Services ---

	if err := c.Provide(func(cfg *config.Config, forwarder secondary.EventForwarder, mirror secondary.EventMirror, logger *zap.Logger) *service.WebhookService {
		return service.NewWebhookService(service.Options{
			WebhookSecret:       cfg.WebhookSecret,
			EnforceSignatures:   cfg.EnforceSignatures(),
			SkipCancelledOrders: cfg.SkipCancelledOrders,
			Build: service.BuildOptions{
				DefaultCurrency: cfg.DefaultCurrency,
				PageURLFallback: cfg.DefaultPageURL,
				TimestampSource: cfg.TimestampSource,
			},
		}, forwarder, mirror, logger)
	}); err != nil {
		return nil, err
	}

	// Bind the concrete service to the primary port interface.
	if err := c.Provide(func(s *service.WebhookService) primary.OrderWebhookService {
		return s
	}); err != nil {
		return nil, err
	}

	// --- Primary Adapters ---

	if err := c.Provide(func(svc primary.OrderWebhookService, cfg *config.Config, checks []secondary.HealthChecker, logger *zap.Logger) http.Handler {
		return httphandler.NewRouter(svc, cfg, checks, logger)
	}); err != nil {
		return nil, err
	}

	return c, nil
}
