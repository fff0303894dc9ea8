package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSettingsService creates the settings usecase.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *settingsService) EnsureSettings(ctx context.Context) error {
	if err := srv.settingsRepo.EnsureSettings(ctx, entity.DefaultSettings()); err != nil {
		return errors.Wrap(err, "failed to ensure settings")
	}

	return nil
}

// GetSettings re-creates the row if it was removed behind the service's back.
func (srv *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.GetSettings(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		srv.log(ctx).Warn("Settings row missing, restoring defaults")
		if err := srv.EnsureSettings(ctx); err != nil {
			return nil, err
		}
		settings, err = srv.settingsRepo.GetSettings(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSettingsUnavailable, err.Error())
	}

	return settings, nil
}

func (srv *settingsService) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	if patch.IsEmpty() {
		return srv.GetSettings(ctx)
	}

	err := srv.settingsRepo.UpdateSettings(ctx, patch)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		if err := srv.EnsureSettings(ctx); err != nil {
			return nil, err
		}
		err = srv.settingsRepo.UpdateSettings(ctx, patch)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	settings, err := srv.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventSettingsUpdate, "settings", settings)

	return settings, nil
}
