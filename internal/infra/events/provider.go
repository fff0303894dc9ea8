// Package events publishes catalog and ticket change events.
package events

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by events.provider. An absent events
// section disables publishing without failing startup.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Events
	if cfg == nil || cfg.Provider == constants.EventsProviderNone {
		params.Logger.Info("Event publishing disabled")

		return discardPublisher{logger: params.Logger}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.EventsProviderKafka:
		if len(cfg.Brokers) == 0 {
			return nil, errors.New("events.brokers must list at least one kafka broker")
		}

		publisher = NewKafkaPublisher(cfg.Brokers, cfg.Topic, params.Logger)
		params.Logger.Info("Publishing events to kafka",
			slog.Any("brokers", cfg.Brokers),
			slog.String("topic", cfg.Topic),
		)

	case constants.EventsProviderPubSub:
		if cfg.ProjectID == "" {
			return nil, errors.New("events.projectId is required for the pubsub provider")
		}

		ctx := params.Ctx
		if ctx == nil {
			ctx = context.Background()
		}
		publisher, err = NewPubSubPublisher(ctx, cfg.ProjectID, cfg.Topic, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Publishing events to pubsub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic", cfg.Topic),
		)

	default:
		return nil, errors.Errorf("unknown events provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

// discardPublisher drops events, logging each at debug level.
type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) Publish(ctx context.Context, event *service.Event) error {
	p.logger.DebugContext(ctx, "Dropping event",
		slog.String("type", string(event.Type)),
		slog.String("entity_id", event.EntityID),
	)

	return nil
}

func (discardPublisher) Close() error { return nil }
