package gormstore

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type cleanupTaskRepository struct {
	db *gorm.DB
}

// NewCleanupTaskRepository is the constructor for cleanupTaskRepository.
func NewCleanupTaskRepository(db *gorm.DB) repository.CleanupTaskRepository {
	return &cleanupTaskRepository{
		db: db,
	}
}

func (repo *cleanupTaskRepository) CreateCleanupTask(ctx context.Context, task *entity.ImageCleanupTask) error {
	taskM := fromCleanupTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return errors.Wrap(err, "failed to create cleanup task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

func (repo *cleanupTaskRepository) FindDueCleanupTasks(ctx context.Context, now time.Time, limit int) ([]*entity.ImageCleanupTask, error) {
	var taskModels []*model.ImageCleanupTaskModel

	if err := repo.db.WithContext(ctx).
		Where("next_attempt_at <= ?", now).
		Order("next_attempt_at ASC, id ASC").
		Limit(limit).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due cleanup tasks")
	}

	tasks := make([]*entity.ImageCleanupTask, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toCleanupTaskDomain(taskM))
	}

	return tasks, nil
}

func (repo *cleanupTaskRepository) RescheduleCleanupTask(ctx context.Context, task *entity.ImageCleanupTask) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ImageCleanupTaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"attempts":        task.Attempts,
			"last_error":      task.LastError,
			"next_attempt_at": task.NextAttemptAt,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reschedule cleanup task")
	}

	return nil
}

func (repo *cleanupTaskRepository) DeleteCleanupTask(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ImageCleanupTaskModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cleanup task")
	}

	return nil
}

func toCleanupTaskDomain(data *model.ImageCleanupTaskModel) *entity.ImageCleanupTask {
	return &entity.ImageCleanupTask{
		ID:            data.ID,
		PublicID:      data.PublicID,
		URL:           data.URL,
		Attempts:      data.Attempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCleanupTaskDomain(data *entity.ImageCleanupTask) *model.ImageCleanupTaskModel {
	return &model.ImageCleanupTaskModel{
		ID:            data.ID,
		PublicID:      data.PublicID,
		URL:           data.URL,
		Attempts:      data.Attempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
	}
}
