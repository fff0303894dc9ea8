package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for blog persistence.
var (
	// ErrBlogNotFound is returned when neither id nor slug matches.
	ErrBlogNotFound = errors.New("blog not found")
	// ErrDuplicateSlug is returned when another blog already uses the slug.
	ErrDuplicateSlug = errors.New("blog slug already exists")
)

// BlogRepository defines the interface for blog persistence.
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog *entity.Blog) error
	FindBlogByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	FindBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	// ListBlogs returns every blog, newest first.
	ListBlogs(ctx context.Context) ([]*entity.Blog, error)
	UpdateBlog(ctx context.Context, blog *entity.Blog) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}
