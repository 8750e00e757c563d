package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Order lifecycle event types.
const (
	OrderCreated       = "order.created"
	OrderUpdated       = "order.updated"
	OrderDeleted       = "order.deleted"
	OrderDesignUpdated = "order.design_updated"
	OrderStageAdvanced = "order.stage_advanced"
)

// OrderEvent is the JSON payload published per lifecycle change.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	SpkNumber string    `json:"spk_number,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Actor     string    `json:"actor"`
	At        time.Time `json:"at"`
}

// messageWriter abstracts kafka.Writer for testability.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher publishes order events to Kafka. A nil Publisher is valid
// and publishes nothing; publish failures are logged, never surfaced to
// the request that triggered them.
type Publisher struct {
	writer messageWriter
	logger *zap.Logger
}

// NewPublisher returns nil when no brokers are configured.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, event OrderEvent) {
	if p == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal order event", zap.Error(err))
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("publish order event",
			zap.String("type", event.Type),
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
