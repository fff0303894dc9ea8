package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsUsecase reads and updates the site settings singleton.
type SettingsUsecase interface {
	// EnsureSettings creates the default row when none exists. Run once at startup.
	EnsureSettings(ctx context.Context) error

	GetSettings(ctx context.Context) (*entity.Settings, error)

	// UpdateSettings writes the supplied fields and returns the resulting settings.
	UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error)
}
