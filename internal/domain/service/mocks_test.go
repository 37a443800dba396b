package service

import (
	"context"

	"github.com/qudous44/tiktok-server/internal/domain/entity"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// mockForwarder implements secondary.EventForwarder for testing.
type mockForwarder struct {
	receipt   *secondary.ForwardReceipt
	err       error
	calls     int
	lastEvent *entity.ConversionEvent
}

func (m *mockForwarder) Forward(_ context.Context, event *entity.ConversionEvent) (*secondary.ForwardReceipt, error) {
	m.calls++
	m.lastEvent = event
	if m.err != nil {
		return nil, m.err
	}
	if m.receipt != nil {
		return m.receipt, nil
	}
	return &secondary.ForwardReceipt{Endpoint: "https://events.example/track"}, nil
}

func (m *mockForwarder) Close() error { return nil }

// mockMirror implements secondary.EventMirror for testing.
type mockMirror struct {
	err     error
	records []secondary.DeliveryRecord
}

func (m *mockMirror) Publish(_ context.Context, record secondary.DeliveryRecord) error {
	m.records = append(m.records, record)
	return m.err
}

func (m *mockMirror) Close() error { return nil }

// Compile-time interface assertions.
var (
	_ secondary.EventForwarder = (*mockForwarder)(nil)
	_ secondary.EventMirror    = (*mockMirror)(nil)
)
