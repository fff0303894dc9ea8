package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (*catalogService, *mockRepo.MockServiceRepository) {
	repo := mockRepo.NewMockServiceRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewCatalogService(CatalogServiceParams{
		ServiceRepo: repo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	}).(*catalogService)

	return svc, repo
}

func TestCatalogService_CreateService_Defaults(t *testing.T) {
	svc, repo := createTestCatalogService(t)
	ctx := context.Background()

	repo.EXPECT().CreateService(ctx, mock.AnythingOfType("*entity.CatalogService")).Return(nil)

	created, err := svc.CreateService(ctx, &usecase.CreateServiceInput{
		Title:       "Screen Repair",
		Description: "Same-day replacement",
		Icon:        "wrench",
		Features:    []string{"OEM parts"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultServiceColor, created.Color)
	assert.True(t, created.Enabled)
	assert.False(t, created.Popular)
	assert.Equal(t, 0, created.Order)
}

func TestCatalogService_CreateService_Disabled(t *testing.T) {
	svc, repo := createTestCatalogService(t)
	ctx := context.Background()
	enabled := false

	repo.EXPECT().CreateService(ctx, mock.AnythingOfType("*entity.CatalogService")).Return(nil)

	created, err := svc.CreateService(ctx, &usecase.CreateServiceInput{
		Title:       "Data Recovery",
		Description: "From any drive",
		Icon:        "disk",
		Color:       "green",
		Enabled:     &enabled,
	})
	require.NoError(t, err)
	assert.Equal(t, "green", created.Color)
	assert.False(t, created.Enabled)
}

func TestCatalogService_CreateService_MissingFields(t *testing.T) {
	svc, _ := createTestCatalogService(t)

	_, err := svc.CreateService(context.Background(), &usecase.CreateServiceInput{Title: "Only a title"})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields(), 2)
}

func TestCatalogService_UpdateService_Partial(t *testing.T) {
	svc, repo := createTestCatalogService(t)
	ctx := context.Background()
	stored := &entity.CatalogService{
		ID:          uuid.New(),
		Title:       "Screen Repair",
		Description: "Same-day replacement",
		Icon:        "wrench",
		Features:    []string{"OEM parts"},
		Color:       "blue",
		Enabled:     true,
	}
	order := 3
	features := []string{}

	repo.EXPECT().FindServiceByID(ctx, stored.ID).Return(stored, nil)
	repo.EXPECT().UpdateService(ctx, stored).Return(nil)

	updated, err := svc.UpdateService(ctx, stored.ID.String(), &usecase.UpdateServiceInput{
		Order:    &order,
		Features: &features,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Order)
	assert.Empty(t, updated.Features)
	assert.Equal(t, "Screen Repair", updated.Title)
}

func TestCatalogService_NotFound(t *testing.T) {
	svc, repo := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := svc.GetService(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)

	repo.EXPECT().FindServiceByID(ctx, id).Return(nil, repository.ErrServiceNotFound)

	err = svc.DeleteService(ctx, id.String())
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}
