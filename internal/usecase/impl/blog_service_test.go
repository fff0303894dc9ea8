package impl

import (
	"context"
	"strings"
	"testing"
	"time"

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

func createTestBlogService(t *testing.T) (*blogService, *mockRepo.MockBlogRepository) {
	repo := mockRepo.NewMockBlogRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewBlogService(BlogServiceParams{
		BlogRepo:  repo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}).(*blogService)
	svc.now = func() time.Time { return time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC) }

	return svc, repo
}

func TestBlogService_ImportBlog_DerivesFields(t *testing.T) {
	svc, repo := createTestBlogService(t)
	ctx := context.Background()
	content := strings.Repeat("word ", 250)

	repo.EXPECT().CreateBlog(ctx, mock.AnythingOfType("*entity.Blog")).Return(nil)

	blog, err := svc.ImportBlog(ctx, &usecase.ImportBlogInput{
		Filename: "my-first-post.md",
		Content:  []byte(content),
	})
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", blog.Slug)
	assert.Equal(t, "My first post", blog.Title)
	assert.Equal(t, content[:150]+"...", blog.Excerpt)
	assert.Equal(t, "2 min read", blog.ReadTime)
	assert.Equal(t, "/blogs/my-first-post.md", blog.ContentPath)
	assert.Equal(t, "Mar 9, 2026", blog.Date)
	assert.Equal(t, importedBlogCategory, blog.Category)
	assert.Equal(t, importedBlogAuthor, blog.Author)
	assert.Equal(t, importedBlogImage, blog.Image)
	assert.False(t, blog.Featured)
}

func TestBlogService_ImportBlog_ShortFileAndOverrides(t *testing.T) {
	svc, repo := createTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().CreateBlog(ctx, mock.AnythingOfType("*entity.Blog")).Return(nil)

	blog, err := svc.ImportBlog(ctx, &usecase.ImportBlogInput{
		Filename: "notes.md",
		Content:  []byte("Hi there"),
		Category: "News",
		Featured: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi there...", blog.Excerpt)
	assert.Equal(t, "1 min read", blog.ReadTime)
	assert.Equal(t, "News", blog.Category)
	assert.True(t, blog.Featured)
}

func TestBlogService_ImportBlog_RejectsNonMarkdown(t *testing.T) {
	svc, _ := createTestBlogService(t)

	for _, name := range []string{"post.txt", ".md", "post.md.exe"} {
		_, err := svc.ImportBlog(context.Background(), &usecase.ImportBlogInput{Filename: name, Content: []byte("x")})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBlogFile, name)
	}
}

func TestBlogService_CreateBlog_DuplicateSlug(t *testing.T) {
	svc, repo := createTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().CreateBlog(ctx, mock.AnythingOfType("*entity.Blog")).Return(repository.ErrDuplicateSlug)

	_, err := svc.CreateBlog(ctx, &usecase.CreateBlogInput{Slug: "hello", Title: "Hello", Excerpt: "Hi"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateSlug)
}

func TestBlogService_CreateBlog_Validation(t *testing.T) {
	svc, _ := createTestBlogService(t)

	_, err := svc.CreateBlog(context.Background(), &usecase.CreateBlogInput{Title: "  "})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"slug", "title", "excerpt"}, fields)
}

func TestBlogService_GetBlog_BySlug(t *testing.T) {
	svc, repo := createTestBlogService(t)
	ctx := context.Background()
	want := &entity.Blog{ID: uuid.New(), Slug: "hello"}

	repo.EXPECT().FindBlogBySlug(ctx, "hello").Return(want, nil)

	got, err := svc.GetBlog(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBlogService_UpdateBlog_ByID(t *testing.T) {
	svc, repo := createTestBlogService(t)
	ctx := context.Background()
	stored := &entity.Blog{ID: uuid.New(), Slug: "hello", Title: "Hello", Excerpt: "Hi"}
	featured := true

	repo.EXPECT().FindBlogByID(ctx, stored.ID).Return(stored, nil)
	repo.EXPECT().UpdateBlog(ctx, stored).Return(nil)

	blog, err := svc.UpdateBlog(ctx, stored.ID.String(), &usecase.UpdateBlogInput{Featured: &featured})
	require.NoError(t, err)
	assert.True(t, blog.Featured)
	assert.Equal(t, "Hello", blog.Title)
}

func TestBlogService_DeleteBlog_NotFound(t *testing.T) {
	svc, repo := createTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().FindBlogBySlug(ctx, "missing").Return(nil, repository.ErrBlogNotFound)

	err := svc.DeleteBlog(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}
