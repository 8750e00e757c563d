package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublisher_NilIsSafe(t *testing.T) {
	var p *Publisher
	// must not panic
	p.Publish(context.Background(), OrderEvent{Type: OrderCreated, OrderID: "o1"})
	assert.NoError(t, p.Close())
}

func TestNewPublisher_NoBrokersDisables(t *testing.T) {
	p := NewPublisher(nil, "orders", zap.NewNop())
	assert.Nil(t, p)
}

func TestPublisher_KeyedByOrderID(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{writer: w, logger: zap.NewNop()}

	p.Publish(context.Background(), OrderEvent{
		Type:    OrderStageAdvanced,
		OrderID: "order-42",
		Stage:   "PRESS",
		Actor:   "user-1",
	})

	require.Len(t, w.messages, 1)
	assert.Equal(t, []byte("order-42"), w.messages[0].Key)

	var event OrderEvent
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &event))
	assert.Equal(t, OrderStageAdvanced, event.Type)
	assert.Equal(t, "PRESS", event.Stage)
	assert.False(t, event.At.IsZero())
}

func TestPublisher_WriteFailureSwallowed(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := &Publisher{writer: w, logger: zap.NewNop()}

	// publish failures are logged, never propagated
	p.Publish(context.Background(), OrderEvent{Type: OrderUpdated, OrderID: "o1"})
}
