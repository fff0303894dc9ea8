package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CleanupTaskRepository persists remote image deletes awaiting retry.
type CleanupTaskRepository interface {
	CreateCleanupTask(ctx context.Context, task *entity.ImageCleanupTask) error

	// FindDueCleanupTasks returns at most limit tasks whose NextAttemptAt is not after now, oldest first.
	FindDueCleanupTasks(ctx context.Context, now time.Time, limit int) ([]*entity.ImageCleanupTask, error)

	// RescheduleCleanupTask stores the task's Attempts, LastError and NextAttemptAt.
	RescheduleCleanupTask(ctx context.Context, task *entity.ImageCleanupTask) error

	DeleteCleanupTask(ctx context.Context, id uuid.UUID) error
}
