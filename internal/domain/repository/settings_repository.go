package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when the singleton row is missing.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists the site settings singleton.
type SettingsRepository interface {
	// EnsureSettings inserts defaults when the row is absent and leaves an existing row untouched.
	EnsureSettings(ctx context.Context, defaults *entity.Settings) error

	GetSettings(ctx context.Context) (*entity.Settings, error)

	// UpdateSettings writes only the columns present in patch.
	UpdateSettings(ctx context.Context, patch entity.SettingsPatch) error
}
