package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type imageCleanupService struct {
	imageStore  service.ImageStore
	taskRepo    repository.CleanupTaskRepository
	maxAttempts int
	batchSize   int
	retryDelay  time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// ImageCleanupServiceParams holds dependencies for ImageCleanupService, injected by Fx.
type ImageCleanupServiceParams struct {
	fx.In

	ImageStore service.ImageStore
	TaskRepo   repository.CleanupTaskRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewImageCleanupService creates the cleanup usecase.
func NewImageCleanupService(params ImageCleanupServiceParams) usecase.ImageCleanupUsecase {
	cfg := params.Config.Cleanup

	return &imageCleanupService{
		imageStore:  params.ImageStore,
		taskRepo:    params.TaskRepo,
		maxAttempts: cfg.MaxAttempts,
		batchSize:   cfg.BatchSize,
		retryDelay:  cfg.RetryDelay,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *imageCleanupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *imageCleanupService) DiscardImages(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}

		publicID := srv.imageStore.PublicIDFromURL(url)
		if publicID == "" {
			srv.log(ctx).Warn("Skipping remote delete of unrecognised image URL", slog.String("url", url))

			continue
		}

		if err := srv.imageStore.Delete(ctx, publicID); err != nil {
			srv.log(ctx).Warn("Remote image delete failed, queued for retry",
				slog.String("public_id", publicID),
				slog.Any("error", err))
			srv.enqueue(ctx, publicID, url, err)

			continue
		}

		srv.log(ctx).Debug("Remote image deleted", slog.String("public_id", publicID))
	}
}

// enqueue must survive the request being cancelled, which is a common reason for the delete to fail.
func (srv *imageCleanupService) enqueue(ctx context.Context, publicID, url string, cause error) {
	now := srv.now().UTC()
	task := &entity.ImageCleanupTask{
		PublicID:      publicID,
		URL:           url,
		Attempts:      1,
		LastError:     cause.Error(),
		NextAttemptAt: now.Add(srv.retryDelay),
	}

	if err := srv.taskRepo.CreateCleanupTask(context.WithoutCancel(ctx), task); err != nil {
		srv.log(ctx).Error("Failed to queue image cleanup, remote object will be orphaned",
			slog.String("public_id", publicID),
			slog.Any("error", err))
	}
}

func (srv *imageCleanupService) Sweep(ctx context.Context) (*usecase.SweepReport, error) {
	now := srv.now().UTC()

	tasks, err := srv.taskRepo.FindDueCleanupTasks(ctx, now, srv.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load due cleanup tasks")
	}

	report := &usecase.SweepReport{}
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}
		report.Processed++

		deleteErr := srv.imageStore.Delete(ctx, task.PublicID)
		if deleteErr == nil {
			if err := srv.taskRepo.DeleteCleanupTask(ctx, task.ID); err != nil {
				return report, errors.Wrap(err, "failed to remove finished cleanup task")
			}
			report.Deleted++

			continue
		}

		task.Attempts++
		task.LastError = deleteErr.Error()

		if task.Attempts >= srv.maxAttempts {
			srv.log(ctx).Error("Giving up on remote image delete",
				slog.String("public_id", task.PublicID),
				slog.String("url", task.URL),
				slog.Int("attempts", task.Attempts),
				slog.Any("error", deleteErr))
			if err := srv.taskRepo.DeleteCleanupTask(ctx, task.ID); err != nil {
				return report, errors.Wrap(err, "failed to remove abandoned cleanup task")
			}
			report.Abandoned++

			continue
		}

		task.NextAttemptAt = now.Add(srv.retryDelay * time.Duration(task.Attempts))
		if err := srv.taskRepo.RescheduleCleanupTask(ctx, task); err != nil {
			return report, errors.Wrap(err, "failed to reschedule cleanup task")
		}
		report.Retried++
	}

	return report, nil
}
