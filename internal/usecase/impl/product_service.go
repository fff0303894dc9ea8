package impl

import (
	"context"
	"log/slog"
	"slices"
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

type productService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	cleanup     usecase.ImageCleanupUsecase
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Cleanup     usecase.ImageCleanupUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProductService creates the product usecase.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		cleanup:     params.Cleanup,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return srv.findProduct(ctx, id)
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if len(input.Images) > entity.MaxProductImages {
		return nil, errors.Wrapf(domainerrors.ErrTooManyImages, "%d files supplied", len(input.Images))
	}

	product := &entity.Product{
		Name:          strings.TrimSpace(input.Name),
		Category:      strings.TrimSpace(input.Category),
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Badge:         input.Badge,
		InStock:       input.InStock,
		Specs:         input.Specs,
		Description:   strings.TrimSpace(input.Description),
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	stored, err := uploadImages(ctx, srv.imageStore, srv.cleanup, input.Images)
	if err != nil {
		return nil, err
	}
	product.Images = storedURLs(stored)

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		srv.cleanup.DiscardImages(ctx, product.Images...)

		return nil, mapProductWriteError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.Int("images", len(product.Images)))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProductCreated, product.ID.String(), product)

	return product, nil
}

// UpdateProduct keeps the requested attached images, appends new uploads up to the cap and
// removes whatever was attached before but is no longer part of the set.
func (srv *productService) UpdateProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	existing, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	applyProductUpdate(&updated, input)
	if err := validateProduct(&updated); err != nil {
		return nil, err
	}

	kept := existing.RetainAttached(input.ExistingImages)
	files := input.NewImages
	if available := entity.MaxProductImages - len(kept); len(files) > available {
		srv.log(ctx).Info("Dropping images over the product limit",
			slog.String("product_id", existing.ID.String()),
			slog.Int("supplied", len(files)),
			slog.Int("accepted", available))
		files = files[:available]
	}

	stored, err := uploadImages(ctx, srv.imageStore, srv.cleanup, files)
	if err != nil {
		return nil, err
	}
	uploaded := storedURLs(stored)
	updated.Images = entity.MergeImages(kept, uploaded)

	if err := srv.productRepo.UpdateProduct(ctx, &updated); err != nil {
		srv.cleanup.DiscardImages(ctx, uploaded...)

		return nil, mapProductWriteError(err, "failed to update product")
	}

	srv.cleanup.DiscardImages(ctx, entity.DroppedImages(existing.Images, updated.Images)...)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProductUpdated, updated.ID.String(), &updated)

	return &updated, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, product.ID); err != nil {
		return mapProductWriteError(err, "failed to delete product")
	}

	srv.cleanup.DiscardImages(ctx, product.Images...)
	srv.log(ctx).Info("Product deleted", slog.String("product_id", product.ID.String()))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProductDeleted, product.ID.String(), nil)

	return nil
}

func (srv *productService) AppendImages(ctx context.Context, id string, files []service.ImageUpload) (*entity.Product, error) {
	if len(files) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoImagesProvided)
	}

	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	available := product.AvailableImageSlots()
	if available <= 0 {
		return nil, errors.Wrapf(domainerrors.ErrImageCapacityReached, "product %s", product.ID)
	}
	if len(files) > available {
		files = files[:available]
	}

	stored, err := uploadImages(ctx, srv.imageStore, srv.cleanup, files)
	if err != nil {
		return nil, err
	}
	uploaded := storedURLs(stored)
	product.Images = append(slices.Clone(product.Images), uploaded...)

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		srv.cleanup.DiscardImages(ctx, uploaded...)

		return nil, mapProductWriteError(err, "failed to append product images")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProductUpdated, product.ID.String(), product)

	return product, nil
}

func (srv *productService) RemoveImage(ctx context.Context, id string, index int) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, ok := product.RemoveImageAt(index)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImageIndex, "index %d of %d images", index, len(product.Images))
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, mapProductWriteError(err, "failed to remove product image")
	}

	srv.cleanup.DiscardImages(ctx, removed)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProductUpdated, product.ID.String(), product)

	return product, nil
}

func (srv *productService) findProduct(ctx context.Context, rawID string) (*entity.Product, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "malformed product id %q", rawID)
	}

	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// applyProductUpdate follows the admin form: blank text fields and absent values keep what is stored,
// while an absent original price clears it.
func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	if category := strings.TrimSpace(input.Category); category != "" {
		product.Category = category
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		product.Description = description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	product.OriginalPrice = input.OriginalPrice
	if input.Badge != nil {
		product.Badge = *input.Badge
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.SpecsSet {
		product.Specs = input.Specs
	}
}

func validateProduct(product *entity.Product) error {
	var fields []domainerrors.FieldError
	if product.Name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "Product name is required"})
	}
	if product.Category == "" {
		fields = append(fields, domainerrors.FieldError{Field: "category", Message: "Product category is required"})
	}
	if product.Price < 0 {
		fields = append(fields, domainerrors.FieldError{Field: "price", Message: "Price must be at least 0"})
	}
	if product.OriginalPrice != nil && *product.OriginalPrice < 0 {
		fields = append(fields, domainerrors.FieldError{Field: "originalPrice", Message: "Original price must be at least 0"})
	}
	if product.Description == "" {
		fields = append(fields, domainerrors.FieldError{Field: "description", Message: "Product description is required"})
	}
	if len(product.Images) > entity.MaxProductImages {
		return errors.WithStack(domainerrors.ErrTooManyImages)
	}

	if len(fields) > 0 {
		return errors.WithStack(domainerrors.NewValidationError(fields...))
	}

	return nil
}

func mapProductWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, msg)
	case errors.Is(err, repository.ErrTooManyImages):
		return errors.Wrap(domainerrors.ErrTooManyImages, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
