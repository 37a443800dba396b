package http

import (
	"context"

	"github.com/qudous44/tiktok-server/internal/port/primary"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// mockWebhookService implements primary.OrderWebhookService for testing.
type mockWebhookService struct {
	result   primary.WebhookResult
	err      error
	calls    int
	lastBody []byte
	lastSig  string
}

func (m *mockWebhookService) ProcessOrderWebhook(_ context.Context, rawBody []byte, signatureHeader string) (primary.WebhookResult, error) {
	m.calls++
	m.lastBody = rawBody
	m.lastSig = signatureHeader
	return m.result, m.err
}

var _ primary.OrderWebhookService = (*mockWebhookService)(nil)

// mockHealthCheck implements secondary.HealthChecker for testing.
type mockHealthCheck struct {
	name string
	err  error
}

func (m mockHealthCheck) Name() string                { return m.name }
func (m mockHealthCheck) Check(context.Context) error { return m.err }

var _ secondary.HealthChecker = mockHealthCheck{}
