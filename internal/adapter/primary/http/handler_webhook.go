package http

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/domain"
	"github.com/qudous44/tiktok-server/internal/metrics"
	"github.com/qudous44/tiktok-server/internal/port/primary"
)

// maxWebhookBody caps the accepted webhook payload size.
const maxWebhookBody = 1 << 20

// WebhookHandler handles POST /webhooks/shopify/orders-create.
type WebhookHandler struct {
	service primary.OrderWebhookService
	logger  *zap.Logger
}

// NewWebhookHandler creates the order-creation webhook handler.
func NewWebhookHandler(service primary.OrderWebhookService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		logger:  logger.Named("webhook-handler"),
	}
}

// ServeHTTP maps the processing outcome onto the response contract: 200 for
// forwarded or intentionally skipped, 401 for a bad signature, 500 for
// everything else. The raw body is handed to the service unparsed so the
// signature is computed over the exact bytes Shopify signed.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed",
			Code:  "METHOD_NOT_ALLOWED",
		})
		return
	}

	rawBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		metrics.WebhooksTotal.WithLabelValues("unreadable_body").Inc()
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "failed to read request body",
			Code:  "BODY_READ_ERROR",
		})
		return
	}

	result, err := h.service.ProcessOrderWebhook(r.Context(), rawBody, r.Header.Get(domain.SignatureHeader))
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.WebhooksTotal.WithLabelValues(string(result.Disposition)).Inc()
	respondJSON(w, http.StatusOK, WebhookResponse{
		Status:  string(result.Disposition),
		EventID: result.EventID,
	})
}

func (h *WebhookHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		metrics.WebhooksTotal.WithLabelValues("unauthorized").Inc()
		respondJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error: "webhook signature verification failed",
			Code:  "INVALID_SIGNATURE",
		})
	case errors.Is(err, domain.ErrMalformedPayload), errors.Is(err, domain.ErrInvalidPrice):
		metrics.WebhooksTotal.WithLabelValues("malformed").Inc()
		h.logger.Warn("rejected webhook payload", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "failed to process order payload",
			Code:  "MALFORMED_PAYLOAD",
		})
	default:
		metrics.WebhooksTotal.WithLabelValues("upstream_error").Inc()
		h.logger.Error("failed to forward conversion event", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "failed to forward conversion event",
			Code:  "FORWARD_FAILED",
		})
	}
}
