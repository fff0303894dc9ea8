package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// UploadUsecase stores loose images that are not attached to a product.
type UploadUsecase interface {
	UploadImage(ctx context.Context, file service.ImageUpload) (*service.StoredImage, error)

	// UploadImages stores every file or none of them.
	UploadImages(ctx context.Context, files []service.ImageUpload) ([]*service.StoredImage, error)
}
