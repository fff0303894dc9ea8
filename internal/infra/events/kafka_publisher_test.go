package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, discardLogger())

	err := publisher.Publish(context.Background(), &service.Event{
		RequestID: "req-1",
		Type:      service.EventProductCreated,
		EntityID:  "p-1",
		Payload:   map[string]string{"name": "Laptop"},
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "p-1", string(msg.Key))
	assert.Len(t, msg.Headers, 2)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "product.created", decoded["type"])
	assert.NotEmpty(t, decoded["occurred_at"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	publisher := newKafkaPublisher(&fakeWriter{err: errors.New("broker down")}, discardLogger())

	err := publisher.Publish(context.Background(), &service.Event{Type: service.EventTicketCreated, EntityID: "t-1"})
	assert.ErrorContains(t, err, "broker down")
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("noop when unconfigured", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{Lc: lc, Config: &config.Config{}, Logger: discardLogger()})
		require.NoError(t, err)
		assert.IsType(t, discardPublisher{}, publisher)
		assert.NoError(t, publisher.Publish(context.Background(), &service.Event{Type: service.EventBlogChanged}))
	})

	t.Run("kafka requires brokers", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Events: &config.EventsConfig{Provider: "kafka"}}
		_, err := NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: discardLogger()})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Events: &config.EventsConfig{Provider: "carrier-pigeon"}}
		_, err := NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: discardLogger()})
		assert.Error(t, err)
	})

	t.Run("kafka writer is created lazily", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Events: &config.EventsConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}, Topic: "storefront_events"}}
		publisher, err := NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: discardLogger()})
		require.NoError(t, err)
		assert.IsType(t, &kafkaPublisher{}, publisher)
		lc.RequireStart().RequireStop()
	})
}
