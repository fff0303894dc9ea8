// Package sweeper runs the image cleanup queue on a cron schedule.
package sweeper

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type sweeperServer struct {
	cfg       *config.CleanupConfig
	logger    *slog.Logger
	cleanupUC usecase.ImageCleanupUsecase
	cron      *cron.Cron
	done      chan struct{}
}

// ServerParams holds dependencies for the sweeper
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	CleanupUC usecase.ImageCleanupUsecase
}

// NewServer schedules the cleanup sweep. An invalid schedule fails at startup.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "sweeper"))

	srv := &sweeperServer{
		cfg:       params.Cfg.Cleanup,
		logger:    logger,
		cleanupUC: params.CleanupUC,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		done: make(chan struct{}),
	}

	if srv.cfg.Enabled {
		if _, err := srv.cron.AddFunc(srv.cfg.Schedule, srv.sweep); err != nil {
			return nil, errors.Wrapf(err, "invalid cleanup schedule %q", srv.cfg.Schedule)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the schedule until ctx is done or the app stops.
func (s *sweeperServer) Serve(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("Image cleanup sweep disabled")

		return nil
	}

	s.logger.Info("Starting image cleanup sweep", slog.String("schedule", s.cfg.Schedule))
	s.cron.Start()

	select {
	case <-ctx.Done():
		<-s.cron.Stop().Done()
	case <-s.done:
	}

	return nil
}

func (s *sweeperServer) sweep() {
	logger := s.logger.With(slog.String("sweep_id", uuid.NewString()))
	ctx := deliverycontext.WithLogger(context.Background(), logger)
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	report, err := s.cleanupUC.Sweep(ctx)
	if err != nil {
		logger.Error("Image cleanup sweep failed", slog.Any("error", err))

		return
	}

	if report.Processed == 0 {
		return
	}

	logger.Info("Image cleanup sweep finished",
		slog.Int("processed", report.Processed),
		slog.Int("deleted", report.Deleted),
		slog.Int("retried", report.Retried),
		slog.Int("abandoned", report.Abandoned),
	)
}

// stop waits for a running sweep to finish, bounded by the hook timeout.
func (s *sweeperServer) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down image cleanup sweep")
	defer close(s.done)

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "cleanup sweep did not finish in time")
	}
}

// cronLogger routes cron's own messages through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
