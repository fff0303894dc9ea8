// Package sequence selects the counter backend used for ticket numbers.
package sequence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/gormstore"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params holds dependencies for the SequenceGenerator, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewSequenceGenerator returns the table-backed generator unless redis is configured.
func NewSequenceGenerator(params Params) (service.SequenceGenerator, error) {
	cfg := params.Config.TicketSequence

	switch cfg.Provider {
	case constants.SequenceProviderGorm:
		params.Logger.Info("Using database ticket sequence")

		return gormstore.NewSequenceGenerator(params.DB), nil

	case constants.SequenceProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis sequence provider")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrapf(err, "redis unavailable at %s", cfg.Redis.Addr)
				}
				params.Logger.Info("Using redis ticket sequence", slog.String("addr", cfg.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisSequence(client, cfg.Redis.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown ticket sequence provider: %s", cfg.Provider)
	}
}
