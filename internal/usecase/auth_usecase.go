package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput represents the data required for admin login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is a signed bearer token and its owner.
type LoginOutput struct {
	Token string            `json:"token"`
	User  *entity.AdminUser `json:"user"`
}

// ChangePasswordInput represents a password change of the signed-in admin.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// AuthUsecase authenticates admins.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves the admin behind a validated token.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error)

	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// SeedAdmin creates the admin account if the username is free.
	// created is false when the account already existed.
	SeedAdmin(ctx context.Context, username, password string) (created bool, err error)
}
