package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for admin user persistence.
var (
	ErrAdminUserNotFound  = errors.New("admin user not found")
	ErrDuplicateAdminUser = errors.New("admin username already exists")
)

// AdminUserRepository persists operator accounts.
type AdminUserRepository interface {
	CreateAdminUser(ctx context.Context, user *entity.AdminUser) error
	FindAdminUserByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	FindAdminUserByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
