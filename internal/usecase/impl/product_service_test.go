package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockSvc.MockImageStore
	cleanup     *mockUsecase.MockImageCleanupUsecase
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	cleanup := mockUsecase.NewMockImageCleanupUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Cleanup:     cleanup,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		imageStore:  imageStore,
		cleanup:     cleanup,
	}
}

func existingProduct(images ...string) *entity.Product {
	original := 120.0

	return &entity.Product{
		ID:            uuid.New(),
		Name:          "Widget",
		Category:      "Laptops",
		Price:         100,
		OriginalPrice: &original,
		Images:        images,
		Badge:         "Sale",
		InStock:       true,
		Specs:         []string{"16GB RAM"},
		Description:   "A widget",
	}
}

func TestProductService_CreateProduct_NoImages(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:        "Widget",
		Category:    "Laptops",
		Price:       100,
		InStock:     true,
		Description: "A widget",
	})
	require.NoError(t, err)
	assert.Empty(t, product.Images)
	assert.Equal(t, "", product.PrimaryImage())
	assert.True(t, product.InStock)
}

func TestProductService_CreateProduct_UploadsInOrder(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().Upload(ctx, mock.Anything).RunAndReturn(storeByFilename).Times(2)
	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.MatchedBy(func(p *entity.Product) bool { return len(p.Images) == 2 })).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:        "Widget",
		Category:    "Laptops",
		Price:       100,
		Description: "A widget",
		Images:      imageFiles("front.png", "back.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.test/front.png", "https://img.test/back.png"}, product.Images)
	assert.Equal(t, "https://img.test/front.png", product.PrimaryImage())
}

func TestProductService_CreateProduct_TooManyFiles(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:        "Widget",
		Category:    "Laptops",
		Description: "A widget",
		Images:      imageFiles("1", "2", "3", "4", "5", "6"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrTooManyImages)
}

func TestProductService_CreateProduct_ValidationFailure(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  " ",
		Price: -1,
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "category", "price", "description"}, fields)
}

func TestProductService_CreateProduct_UploadFailureDiscardsStoredImages(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().
		Upload(ctx, mock.MatchedBy(func(img service.ImageUpload) bool { return img.Filename == "a.png" })).
		RunAndReturn(storeByFilename)
	fx.imageStore.EXPECT().
		Upload(ctx, mock.MatchedBy(func(img service.ImageUpload) bool { return img.Filename == "b.png" })).
		Return(nil, errors.New("host unavailable"))
	fx.cleanup.EXPECT().DiscardImages(ctx, "https://img.test/a.png").Return()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:        "Widget",
		Category:    "Laptops",
		Description: "A widget",
		Images:      imageFiles("a.png", "b.png"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
}

func TestProductService_CreateProduct_StoreFailureDiscardsUploads(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().Upload(ctx, mock.Anything).RunAndReturn(storeByFilename)
	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(errors.New("connection refused"))
	fx.cleanup.EXPECT().DiscardImages(ctx, "https://img.test/a.png").Return()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:        "Widget",
		Category:    "Laptops",
		Description: "A widget",
		Images:      imageFiles("a.png"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create product")
}

func TestProductService_GetProduct_MalformedID(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.GetProduct(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id.String())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProduct_TruncatesNewImagesToLimit(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := existingProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
	fx.imageStore.EXPECT().Upload(ctx, mock.Anything).RunAndReturn(storeByFilename).Times(entity.MaxProductImages)
	fx.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.cleanup.EXPECT().DiscardImages(ctx).Return()

	updated, err := fx.service.UpdateProduct(ctx, existing.ID.String(), &usecase.UpdateProductInput{
		ExistingImages: []string{},
		NewImages:      imageFiles("1.png", "2.png", "3.png", "4.png", "5.png", "6.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://img.test/1.png",
		"https://img.test/2.png",
		"https://img.test/3.png",
		"https://img.test/4.png",
		"https://img.test/5.png",
	}, updated.Images)
}

func TestProductService_UpdateProduct_ReordersAndDropsImages(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := existingProduct("https://img.test/a", "https://img.test/b", "https://img.test/c")

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().
		UpdateProduct(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return assert.ObjectsAreEqual([]string{"https://img.test/c", "https://img.test/a"}, p.Images)
		})).
		Return(nil)
	fx.cleanup.EXPECT().DiscardImages(ctx, "https://img.test/b").Return()

	updated, err := fx.service.UpdateProduct(ctx, existing.ID.String(), &usecase.UpdateProductInput{
		ExistingImages: []string{"https://img.test/c", "https://img.test/a", "https://elsewhere.test/x"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.test/c", "https://img.test/a"}, updated.Images)
	assert.Len(t, existing.Images, 3, "stored product must not be mutated in place")
}

func TestProductService_UpdateProduct_FieldSemantics(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := existingProduct("https://img.test/a")
	price := 80.0
	inStock := false

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.cleanup.EXPECT().DiscardImages(ctx).Return()

	updated, err := fx.service.UpdateProduct(ctx, existing.ID.String(), &usecase.UpdateProductInput{
		Name:           "",
		Category:       "Desktops",
		Price:          &price,
		InStock:        &inStock,
		ExistingImages: []string{"https://img.test/a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, "Desktops", updated.Category)
	assert.InDelta(t, 80.0, updated.Price, 0.001)
	assert.Nil(t, updated.OriginalPrice)
	assert.Equal(t, "Sale", updated.Badge)
	assert.False(t, updated.InStock)
	assert.Equal(t, []string{"16GB RAM"}, updated.Specs)
}

func TestProductService_UpdateProduct_NegativePriceRejected(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := existingProduct()
	price := -5.0

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)

	_, err := fx.service.UpdateProduct(ctx, existing.ID.String(), &usecase.UpdateProductInput{
		Price:     &price,
		NewImages: imageFiles("never-uploaded.png"),
	})

	var validationErr *domainerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProductService_DeleteProduct_RemovesRemoteImages(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := existingProduct("https://img.test/a", "https://img.test/b")

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().DeleteProduct(ctx, existing.ID).Return(nil)
	fx.cleanup.EXPECT().DiscardImages(ctx, "https://img.test/a", "https://img.test/b").Return()

	err := fx.service.DeleteProduct(ctx, existing.ID.String())
	require.NoError(t, err)
}

func TestProductService_AppendImages(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		files       []string
		wantUploads int
		wantImages  int
		wantErr     error
	}{
		{
			name:        "fits",
			existing:    []string{"https://img.test/a"},
			files:       []string{"b", "c"},
			wantUploads: 2,
			wantImages:  3,
		},
		{
			name:        "extra files ignored",
			existing:    []string{"https://img.test/a", "https://img.test/b", "https://img.test/c"},
			files:       []string{"d", "e", "f", "g"},
			wantUploads: 2,
			wantImages:  5,
		},
		{
			name:     "full",
			existing: []string{"1", "2", "3", "4", "5"},
			files:    []string{"6"},
			wantErr:  domainerrors.ErrImageCapacityReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			ctx := context.Background()
			existing := existingProduct(tt.existing...)

			fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
			if tt.wantErr == nil {
				fx.imageStore.EXPECT().Upload(ctx, mock.Anything).RunAndReturn(storeByFilename).Times(tt.wantUploads)
				fx.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
			}

			product, err := fx.service.AppendImages(ctx, existing.ID.String(), imageFiles(tt.files...))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, existing.Images, len(tt.existing))

				return
			}

			require.NoError(t, err)
			assert.Len(t, product.Images, tt.wantImages)
			assert.Equal(t, tt.existing, product.Images[:len(tt.existing)])
		})
	}
}

func TestProductService_AppendImages_NoFiles(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.AppendImages(context.Background(), uuid.New().String(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoImagesProvided)
}

func TestProductService_RemoveImage(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := existingProduct("https://img.test/a", "https://img.test/b", "https://img.test/c")

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().
		UpdateProduct(ctx, mock.MatchedBy(func(p *entity.Product) bool { return len(p.Images) == 2 })).
		Return(nil)
	fx.cleanup.EXPECT().DiscardImages(ctx, "https://img.test/a").Return()

	product, err := fx.service.RemoveImage(ctx, existing.ID.String(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.test/b", "https://img.test/c"}, product.Images)
}

func TestProductService_RemoveImage_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 3, 10} {
		fx := createTestProductService(t)
		ctx := context.Background()
		existing := existingProduct("https://img.test/a", "https://img.test/b", "https://img.test/c")

		fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)

		_, err := fx.service.RemoveImage(ctx, existing.ID.String(), index)
		require.ErrorIs(t, err, domainerrors.ErrInvalidImageIndex)
		assert.Len(t, existing.Images, 3)
	}
}
