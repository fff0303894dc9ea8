package gormstore

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{
		db: db,
	}
}

func (repo *adminUserRepository) CreateAdminUser(ctx context.Context, user *entity.AdminUser) error {
	userM := &model.AdminUserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdminUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *adminUserRepository) FindAdminUserByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *adminUserRepository) FindAdminUserByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *adminUserRepository) findOne(ctx context.Context, query string, arg any) (*entity.AdminUser, error) {
	var userM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&userM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	return &entity.AdminUser{
		ID:           userM.ID,
		Username:     userM.Username,
		PasswordHash: userM.PasswordHash,
		Role:         entity.Role(userM.Role),
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}, nil
}

func (repo *adminUserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminUserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"password_hash": hash, "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminUserNotFound
	}

	return nil
}
