package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cleanupServiceFixtures struct {
	service    *imageCleanupService
	imageStore *mockSvc.MockImageStore
	taskRepo   *mockRepo.MockCleanupTaskRepository
	now        time.Time
}

func createTestCleanupService(t *testing.T) cleanupServiceFixtures {
	imageStore := mockSvc.NewMockImageStore(t)
	taskRepo := mockRepo.NewMockCleanupTaskRepository(t)

	svc := NewImageCleanupService(ImageCleanupServiceParams{
		ImageStore: imageStore,
		TaskRepo:   taskRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}).(*imageCleanupService)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return cleanupServiceFixtures{
		service:    svc,
		imageStore: imageStore,
		taskRepo:   taskRepo,
		now:        now,
	}
}

func TestImageCleanupService_DiscardImages_DeletesRemotely(t *testing.T) {
	fx := createTestCleanupService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().PublicIDFromURL("https://img.test/pol-products/abc.png").Return("pol-products/abc")
	fx.imageStore.EXPECT().Delete(ctx, "pol-products/abc").Return(nil)

	fx.service.DiscardImages(ctx, "https://img.test/pol-products/abc.png", "")
}

func TestImageCleanupService_DiscardImages_QueuesFailures(t *testing.T) {
	fx := createTestCleanupService(t)
	ctx := context.Background()
	url := "https://img.test/pol-products/abc.png"

	fx.imageStore.EXPECT().PublicIDFromURL(url).Return("pol-products/abc")
	fx.imageStore.EXPECT().Delete(ctx, "pol-products/abc").Return(errors.New("host unavailable"))
	fx.taskRepo.EXPECT().
		CreateCleanupTask(mock.Anything, mock.MatchedBy(func(task *entity.ImageCleanupTask) bool {
			return task.PublicID == "pol-products/abc" &&
				task.URL == url &&
				task.Attempts == 1 &&
				task.LastError == "host unavailable" &&
				task.NextAttemptAt.Equal(fx.now.Add(time.Minute))
		})).
		Return(nil)

	fx.service.DiscardImages(ctx, url)
}

func TestImageCleanupService_DiscardImages_SkipsForeignURLs(t *testing.T) {
	fx := createTestCleanupService(t)

	fx.imageStore.EXPECT().PublicIDFromURL("https://elsewhere.test/").Return("")

	fx.service.DiscardImages(context.Background(), "https://elsewhere.test/")
}

func TestImageCleanupService_Sweep(t *testing.T) {
	fx := createTestCleanupService(t)
	ctx := context.Background()

	done := &entity.ImageCleanupTask{ID: uuid.New(), PublicID: "done", Attempts: 1}
	retry := &entity.ImageCleanupTask{ID: uuid.New(), PublicID: "retry", Attempts: 1}
	abandon := &entity.ImageCleanupTask{ID: uuid.New(), PublicID: "abandon", Attempts: 2}

	fx.taskRepo.EXPECT().
		FindDueCleanupTasks(ctx, fx.now, 10).
		Return([]*entity.ImageCleanupTask{done, retry, abandon}, nil)

	fx.imageStore.EXPECT().Delete(ctx, "done").Return(nil)
	fx.taskRepo.EXPECT().DeleteCleanupTask(ctx, done.ID).Return(nil)

	fx.imageStore.EXPECT().Delete(ctx, "retry").Return(errors.New("still down"))
	fx.taskRepo.EXPECT().
		RescheduleCleanupTask(ctx, mock.MatchedBy(func(task *entity.ImageCleanupTask) bool {
			return task.ID == retry.ID && task.Attempts == 2 && task.NextAttemptAt.Equal(fx.now.Add(2*time.Minute))
		})).
		Return(nil)

	fx.imageStore.EXPECT().Delete(ctx, "abandon").Return(errors.New("still down"))
	fx.taskRepo.EXPECT().DeleteCleanupTask(ctx, abandon.ID).Return(nil)

	report, err := fx.service.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 1, report.Retried)
	assert.Equal(t, 1, report.Abandoned)
	assert.Equal(t, "still down", retry.LastError)
}

func TestImageCleanupService_Sweep_LoadError(t *testing.T) {
	fx := createTestCleanupService(t)
	ctx := context.Background()

	fx.taskRepo.EXPECT().FindDueCleanupTasks(ctx, fx.now, 10).Return(nil, errors.New("db down"))

	_, err := fx.service.Sweep(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestImageCleanupService_Sweep_StopsOnCancelledContext(t *testing.T) {
	fx := createTestCleanupService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.taskRepo.EXPECT().
		FindDueCleanupTasks(ctx, fx.now, 10).
		Return([]*entity.ImageCleanupTask{{ID: uuid.New(), PublicID: "x"}}, nil)

	report, err := fx.service.Sweep(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Processed)
}
