package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	serviceRepo repository.ServiceRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for the service-card usecase, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCatalogService creates the service-card usecase.
func NewCatalogService(params CatalogServiceParams) usecase.ServiceUsecase {
	return &catalogService{
		serviceRepo: params.ServiceRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.CatalogService, error) {
	services, err := srv.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *catalogService) GetService(ctx context.Context, id string) (*entity.CatalogService, error) {
	return srv.findService(ctx, id)
}

func (srv *catalogService) CreateService(ctx context.Context, input *usecase.CreateServiceInput) (*entity.CatalogService, error) {
	svc := &entity.CatalogService{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		Features:    input.Features,
		Price:       input.Price,
		Color:       input.Color,
		Popular:     input.Popular,
		Order:       input.Order,
		Enabled:     true,
	}
	if svc.Color == "" {
		svc.Color = entity.DefaultServiceColor
	}
	if input.Enabled != nil {
		svc.Enabled = *input.Enabled
	}
	if err := validateCatalogService(svc); err != nil {
		return nil, err
	}

	if err := srv.serviceRepo.CreateService(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventServiceChanged, svc.ID.String(), svc)

	return svc, nil
}

func (srv *catalogService) UpdateService(ctx context.Context, id string, input *usecase.UpdateServiceInput) (*entity.CatalogService, error) {
	svc, err := srv.findService(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		svc.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		svc.Description = strings.TrimSpace(*input.Description)
	}
	if input.Icon != nil {
		svc.Icon = strings.TrimSpace(*input.Icon)
	}
	if input.Features != nil {
		svc.Features = *input.Features
	}
	if input.Price != nil {
		svc.Price = *input.Price
	}
	if input.Color != nil {
		svc.Color = *input.Color
	}
	if input.Popular != nil {
		svc.Popular = *input.Popular
	}
	if input.Order != nil {
		svc.Order = *input.Order
	}
	if input.Enabled != nil {
		svc.Enabled = *input.Enabled
	}
	if err := validateCatalogService(svc); err != nil {
		return nil, err
	}

	if err := srv.serviceRepo.UpdateService(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service disappeared during update")
		}

		return nil, errors.Wrap(err, "failed to update service")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventServiceChanged, svc.ID.String(), svc)

	return svc, nil
}

func (srv *catalogService) DeleteService(ctx context.Context, id string) error {
	svc, err := srv.findService(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.serviceRepo.DeleteService(ctx, svc.ID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrServiceNotFound, "service disappeared during delete")
		}

		return errors.Wrap(err, "failed to delete service")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventServiceChanged, svc.ID.String(), nil)

	return nil
}

func (srv *catalogService) findService(ctx context.Context, rawID string) (*entity.CatalogService, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrServiceNotFound, "malformed service id %q", rawID)
	}

	svc, err := srv.serviceRepo.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

func validateCatalogService(svc *entity.CatalogService) error {
	var fields []domainerrors.FieldError
	if svc.Title == "" {
		fields = append(fields, domainerrors.FieldError{Field: "title", Message: "Service title is required"})
	}
	if svc.Description == "" {
		fields = append(fields, domainerrors.FieldError{Field: "description", Message: "Service description is required"})
	}
	if svc.Icon == "" {
		fields = append(fields, domainerrors.FieldError{Field: "icon", Message: "Service icon is required"})
	}

	if len(fields) > 0 {
		return errors.WithStack(domainerrors.NewValidationError(fields...))
	}

	return nil
}
