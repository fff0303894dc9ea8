package gormstore

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

func (repo *serviceRepository) CreateService(ctx context.Context, svc *entity.CatalogService) error {
	serviceM := fromServiceDomain(svc)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	svc.ID = serviceM.ID
	svc.CreatedAt = serviceM.CreatedAt
	svc.UpdatedAt = serviceM.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.CatalogService, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) ListServices(ctx context.Context) ([]*entity.CatalogService, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC, id ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.CatalogService, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

func (repo *serviceRepository) UpdateService(ctx context.Context, svc *entity.CatalogService) error {
	serviceM := fromServiceDomain(svc)

	result := repo.db.WithContext(ctx).
		Model(serviceM).
		Select("*").
		Omit("id", "created_at").
		Updates(serviceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	svc.UpdatedAt = serviceM.UpdatedAt

	return nil
}

func (repo *serviceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func toServiceDomain(data *model.ServiceModel) *entity.CatalogService {
	if data == nil {
		return nil
	}

	return &entity.CatalogService{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Icon:        data.Icon,
		Features:    nonNil(data.Features),
		Price:       data.Price,
		Color:       data.Color,
		Popular:     data.Popular,
		Order:       data.DisplayOrder,
		Enabled:     data.Enabled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.CatalogService) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Icon:         data.Icon,
		Features:     nonNil(data.Features),
		Price:        data.Price,
		Color:        data.Color,
		Popular:      data.Popular,
		DisplayOrder: data.Order,
		Enabled:      data.Enabled,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
