package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/port/primary"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// NewRouter creates an HTTP mux with all application routes registered,
// wrapped in the logging and panic-recovery middleware.
func NewRouter(
	webhookService primary.OrderWebhookService,
	cfg *config.Config,
	healthChecks []secondary.HealthChecker,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/webhooks/shopify/orders-create", NewWebhookHandler(webhookService, logger))
	mux.Handle("/health", NewHealthHandler(cfg, healthChecks))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", NewIndexHandler())

	return RequestLogger(logger)(Recoverer(logger)(mux))
}
