// Package usecase defines the application's business operations and their inputs.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// CreateProductInput is a parsed product create form.
type CreateProductInput struct {
	Name          string   `validate:"required"`
	Category      string   `validate:"required"`
	Price         float64  `validate:"gte=0"`
	OriginalPrice *float64 `validate:"omitempty,gte=0"`
	Badge         string
	InStock       bool
	Specs         []string
	Description   string `validate:"required"`

	// Images are uploaded in order and become the product's image set.
	Images []service.ImageUpload
}

// UpdateProductInput is a parsed product update form.
// Empty strings and nil pointers keep the stored value, except OriginalPrice which is cleared when nil.
type UpdateProductInput struct {
	Name          string
	Category      string
	Price         *float64 `validate:"omitempty,gte=0"`
	OriginalPrice *float64 `validate:"omitempty,gte=0"`
	Badge         *string
	InStock       *bool
	Specs         []string
	SpecsSet      bool
	Description   string

	// ExistingImages lists the attached URLs to keep, in their new order.
	ExistingImages []string
	// NewImages are appended after ExistingImages; whatever does not fit in five is not uploaded.
	NewImages []service.ImageUpload
}

// ProductUsecase manages the product catalog and each product's image set.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes the product; its remote images are removed best-effort.
	DeleteProduct(ctx context.Context, id string) error

	// AppendImages uploads as many files as there are free slots and appends them.
	AppendImages(ctx context.Context, id string, files []service.ImageUpload) (*entity.Product, error)

	// RemoveImage detaches the image at index and removes it remotely best-effort.
	RemoveImage(ctx context.Context, id string, index int) (*entity.Product, error)
}
