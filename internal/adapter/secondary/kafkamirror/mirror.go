package kafkamirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// Mirror implements secondary.EventMirror using segmentio/kafka-go. One
// delivery record per forward attempt, keyed by event id so records for the
// same order land on the same partition.
type Mirror struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// New creates a Kafka mirror from the application configuration.
func New(cfg *config.Config, logger *zap.Logger) secondary.EventMirror {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.DeliveryLogTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("delivery-record mirror initialized",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.DeliveryLogTopic),
	)

	return &Mirror{
		writer: writer,
		logger: logger.Named("kafka-mirror"),
	}
}

// Publish writes one delivery record to the configured topic.
func (m *Mirror) Publish(ctx context.Context, record secondary.DeliveryRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding delivery record %s: %w", record.EventID, err)
	}

	msg := kafka.Message{
		Key:   []byte(record.EventID),
		Value: value,
	}
	if err := m.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing delivery record %s: %w", record.EventID, err)
	}

	m.logger.Debug("delivery record published",
		zap.String("event_id", record.EventID),
		zap.String("disposition", string(record.Disposition)),
	)
	return nil
}

// Close shuts down the Kafka writer.
func (m *Mirror) Close() error {
	if m.writer != nil {
		return m.writer.Close()
	}
	return nil
}
