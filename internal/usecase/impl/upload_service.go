package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type uploadService struct {
	imageStore service.ImageStore
	cleanup    usecase.ImageCleanupUsecase
	logger     *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	ImageStore service.ImageStore
	Cleanup    usecase.ImageCleanupUsecase
	Logger     *slog.Logger
}

// NewUploadService creates the loose image upload usecase.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		imageStore: params.ImageStore,
		cleanup:    params.Cleanup,
		logger:     params.Logger,
	}
}

func (srv *uploadService) UploadImage(ctx context.Context, file service.ImageUpload) (*service.StoredImage, error) {
	stored, err := srv.UploadImages(ctx, []service.ImageUpload{file})
	if err != nil {
		return nil, err
	}

	return stored[0], nil
}

func (srv *uploadService) UploadImages(ctx context.Context, files []service.ImageUpload) ([]*service.StoredImage, error) {
	if len(files) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoImageFiles)
	}
	if len(files) > entity.MaxProductImages {
		return nil, errors.Wrapf(domainerrors.ErrTooManyImages, "%d files supplied", len(files))
	}

	stored, err := uploadImages(ctx, srv.imageStore, srv.cleanup, files)
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Images uploaded", slog.Int("count", len(stored)))

	return stored, nil
}
