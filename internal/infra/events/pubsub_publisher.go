package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const pubsubPublishTimeout = 10 * time.Second

// sendFunc publishes one message and waits for the server-assigned id.
type sendFunc func(ctx context.Context, msg *pubsub.Message) (string, error)

// pubsubPublisher writes one JSON message per event with the type and entity as
// attributes, so subscriptions can filter without decoding the payload.
type pubsubPublisher struct {
	send   sendFunc
	close  func() error
	logger *slog.Logger
}

// NewPubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewPubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicPath)
	}

	publisher := client.Publisher(topicID)

	return newPubSubPublisher(
		func(ctx context.Context, msg *pubsub.Message) (string, error) {
			return publisher.Publish(ctx, msg).Get(ctx)
		},
		func() error {
			publisher.Stop()

			return client.Close()
		},
		logger,
	), nil
}

func newPubSubPublisher(send sendFunc, closeFn func() error, logger *slog.Logger) *pubsubPublisher {
	return &pubsubPublisher{send: send, close: closeFn, logger: logger}
}

func (p *pubsubPublisher) Publish(ctx context.Context, event *service.Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"type":      string(event.Type),
		"entity_id": event.EntityID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	ctx, cancel := context.WithTimeout(ctx, pubsubPublishTimeout)
	defer cancel()

	serverID, err := p.send(ctx, &pubsub.Message{Data: data, Attributes: attributes})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	p.logger.Debug("Event published",
		slog.String("type", string(event.Type)),
		slog.String("entity_id", event.EntityID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *pubsubPublisher) Close() error {
	return errors.WithStack(p.close())
}
