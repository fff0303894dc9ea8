package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a service card is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the interface for service card persistence.
type ServiceRepository interface {
	CreateService(ctx context.Context, svc *entity.CatalogService) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.CatalogService, error)
	// ListServices returns every service ordered by display order, ties by creation time.
	ListServices(ctx context.Context) ([]*entity.CatalogService, error)
	UpdateService(ctx context.Context, svc *entity.CatalogService) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}
