package gormstore

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// EnsureSettings inserts the singleton with an ON CONFLICT DO NOTHING so concurrent starts are safe.
func (repo *settingsRepository) EnsureSettings(ctx context.Context, defaults *entity.Settings) error {
	settingsM := fromSettingsDomain(defaults)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure settings")
	}

	return nil
}

func (repo *settingsRepository) GetSettings(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", entity.SettingsID).
		First(&settingsM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// UpdateSettings issues a single UPDATE naming only the supplied columns.
func (repo *settingsRepository) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	columns := map[string]any{"updated_at": time.Now()}
	if patch.ShowScrollingHeadline != nil {
		columns["show_scrolling_headline"] = *patch.ShowScrollingHeadline
	}
	if patch.ShowSidebar != nil {
		columns["show_sidebar"] = *patch.ShowSidebar
	}
	if patch.EnableTicketing != nil {
		columns["enable_ticketing"] = *patch.EnableTicketing
	}
	if patch.MaintenanceMode != nil {
		columns["maintenance_mode"] = *patch.MaintenanceMode
	}
	if patch.HeadlinesSet {
		columns["headlines"] = datatypes.JSONSlice[string](nonNil(patch.Headlines))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("id = ?", entity.SettingsID).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update settings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	return &entity.Settings{
		ShowScrollingHeadline: data.ShowScrollingHeadline,
		ShowSidebar:           data.ShowSidebar,
		EnableTicketing:       data.EnableTicketing,
		MaintenanceMode:       data.MaintenanceMode,
		Headlines:             nonNil(data.Headlines),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.Settings) *model.SettingsModel {
	return &model.SettingsModel{
		ID:                    entity.SettingsID,
		ShowScrollingHeadline: data.ShowScrollingHeadline,
		ShowSidebar:           data.ShowSidebar,
		EnableTicketing:       data.EnableTicketing,
		MaintenanceMode:       data.MaintenanceMode,
		Headlines:             nonNil(data.Headlines),
	}
}
