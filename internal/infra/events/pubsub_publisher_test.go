package events

import (
	"context"
	"encoding/json"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestPubSubPublisher_Publish(t *testing.T) {
	var sent []*pubsub.Message
	closed := false
	publisher := newPubSubPublisher(
		func(ctx context.Context, msg *pubsub.Message) (string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			sent = append(sent, msg)

			return "server-1", nil
		},
		func() error {
			closed = true

			return nil
		},
		discardLogger(),
	)

	err := publisher.Publish(context.Background(), &service.Event{
		RequestID: "req-1",
		Type:      service.EventTicketCreated,
		EntityID:  "TCK-1001",
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	assert.Equal(t, map[string]string{
		"type":       "ticket.created",
		"entity_id":  "TCK-1001",
		"request_id": "req-1",
	}, sent[0].Attributes)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(sent[0].Data, &decoded))
	assert.Equal(t, "TCK-1001", decoded["entity_id"])
	assert.NotEmpty(t, decoded["occurred_at"])

	require.NoError(t, publisher.Close())
	assert.True(t, closed)
}

func TestPubSubPublisher_PublishError(t *testing.T) {
	publisher := newPubSubPublisher(
		func(context.Context, *pubsub.Message) (string, error) { return "", errors.New("topic deleted") },
		func() error { return nil },
		discardLogger(),
	)

	err := publisher.Publish(context.Background(), &service.Event{Type: service.EventBlogChanged, EntityID: "b-1"})
	assert.ErrorContains(t, err, "topic deleted")
	assert.ErrorContains(t, err, "blog.changed")
}

func TestNewEventPublisher_PubSubRequiresProject(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Events: &config.EventsConfig{Provider: "pubsub", Topic: "storefront_events"}}

	_, err := NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: discardLogger()})
	assert.ErrorContains(t, err, "projectId")
}
