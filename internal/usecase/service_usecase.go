package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateServiceInput is a new service card.
type CreateServiceInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon" validate:"required"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
	Color       string   `json:"color"`
	Popular     bool     `json:"popular"`
	Order       int      `json:"order"`
	Enabled     *bool    `json:"enabled"`
}

// UpdateServiceInput carries the fields to change; nil fields are kept.
type UpdateServiceInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Icon        *string   `json:"icon" validate:"omitempty,min=1"`
	Features    *[]string `json:"features"`
	Price       *string   `json:"price"`
	Color       *string   `json:"color"`
	Popular     *bool     `json:"popular"`
	Order       *int      `json:"order"`
	Enabled     *bool     `json:"enabled"`
}

// ServiceUsecase manages the offered service cards.
type ServiceUsecase interface {
	// ListServices returns every card by display order.
	ListServices(ctx context.Context) ([]*entity.CatalogService, error)
	GetService(ctx context.Context, id string) (*entity.CatalogService, error)
	CreateService(ctx context.Context, input *CreateServiceInput) (*entity.CatalogService, error)
	UpdateService(ctx context.Context, id string, input *UpdateServiceInput) (*entity.CatalogService, error)
	DeleteService(ctx context.Context, id string) error
}
