package tiktokforwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/domain"
	"github.com/qudous44/tiktok-server/internal/domain/entity"
	"github.com/qudous44/tiktok-server/internal/metrics"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// maxBodyExcerpt bounds how much of an error response body is carried in
// errors and logs.
const maxBodyExcerpt = 4096

// trackRequest wraps the event with the pixel code for the track endpoint.
type trackRequest struct {
	PixelCode string `json:"pixel_code"`
	*entity.ConversionEvent
}

// trackResponse is the events API response envelope. Code 0 means accepted;
// any other code is an application-level rejection even on HTTP 200.
type trackResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// Forwarder implements secondary.EventForwarder against the events API over
// HTTP. Candidate endpoints are tried in order until one accepts the event;
// this is best-effort failover against regional endpoint instability, with
// no backoff and no circuit breaker.
type Forwarder struct {
	client      *http.Client
	endpoints   []string
	failover    bool
	pixelID     string
	accessToken string
	logger      *zap.Logger
}

// New creates a Forwarder with a pooled transport and a bounded per-request
// timeout from the application configuration.
func New(cfg *config.Config, logger *zap.Logger) secondary.EventForwarder {
	client := &http.Client{
		Timeout: cfg.ForwardTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logger.Info("events api forwarder initialized",
		zap.Duration("timeout", client.Timeout),
		zap.Strings("endpoints", cfg.Endpoints),
		zap.Bool("failover", cfg.FailoverEnabled),
	)

	return &Forwarder{
		client:      client,
		endpoints:   cfg.Endpoints,
		failover:    cfg.FailoverEnabled,
		pixelID:     cfg.PixelID,
		accessToken: cfg.AccessToken,
		logger:      logger.Named("tiktok-forwarder"),
	}
}

// Forward serializes the event and posts it to the first endpoint that
// accepts it. With failover disabled only the first endpoint is attempted.
// On exhaustion the last error is reported.
func (f *Forwarder) Forward(ctx context.Context, event *entity.ConversionEvent) (*secondary.ForwardReceipt, error) {
	payload, err := json.Marshal(trackRequest{PixelCode: f.pixelID, ConversionEvent: event})
	if err != nil {
		return nil, fmt.Errorf("encoding event %s: %w", event.EventID, err)
	}

	timer := prometheus.NewTimer(metrics.ForwardDuration)
	defer timer.ObserveDuration()

	endpoints := f.endpoints
	if !f.failover && len(endpoints) > 1 {
		endpoints = endpoints[:1]
	}

	var lastErr error
	for _, endpoint := range endpoints {
		receipt, attemptErr := f.attempt(ctx, endpoint, payload)
		if attemptErr == nil {
			return receipt, nil
		}
		lastErr = attemptErr
		metrics.ForwardFailuresTotal.WithLabelValues(failureKind(attemptErr)).Inc()
		f.logger.Warn("delivery attempt failed",
			zap.String("event_id", event.EventID),
			zap.String("endpoint", endpoint),
			zap.Error(attemptErr),
		)
	}

	return nil, fmt.Errorf("%w: last attempt: %w", domain.ErrEndpointsExhausted, lastErr)
}

func (f *Forwarder) attempt(ctx context.Context, endpoint string, payload []byte) (*secondary.ForwardReceipt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request for %q: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(domain.AccessTokenHeader, f.accessToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting to %q: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyExcerpt))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamHTTP, resp.StatusCode, string(body))
	}

	var parsed trackResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: unreadable response body: %v", domain.ErrUpstreamRejected, err)
	}
	if parsed.Code != domain.SuccessCode {
		return nil, fmt.Errorf("%w: code %d: %s", domain.ErrUpstreamRejected, parsed.Code, parsed.Message)
	}

	return &secondary.ForwardReceipt{
		Endpoint:  endpoint,
		RequestID: parsed.RequestID,
	}, nil
}

// Close releases pooled connections.
func (f *Forwarder) Close() error {
	if f.client != nil {
		f.client.CloseIdleConnections()
	}
	return nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrUpstreamRejected):
		return "platform_code"
	case errors.Is(err, domain.ErrUpstreamHTTP):
		return "http_status"
	default:
		return "transport"
	}
}
