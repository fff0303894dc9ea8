package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateBlogInput is a new blog post summary.
type CreateBlogInput struct {
	Slug        string `json:"slug" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Excerpt     string `json:"excerpt" validate:"required"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	ReadTime    string `json:"readTime"`
	Featured    bool   `json:"featured"`
	ContentPath string `json:"contentPath"`
}

// UpdateBlogInput carries the fields to change; nil fields are kept.
type UpdateBlogInput struct {
	Slug        *string `json:"slug" validate:"omitempty,min=1"`
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Excerpt     *string `json:"excerpt" validate:"omitempty,min=1"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Author      *string `json:"author"`
	Date        *string `json:"date"`
	ReadTime    *string `json:"readTime"`
	Featured    *bool   `json:"featured"`
	ContentPath *string `json:"contentPath"`
}

// ImportBlogInput is an uploaded markdown article.
type ImportBlogInput struct {
	Filename string
	Content  []byte

	// Optional overrides of the derived defaults.
	Category string
	Author   string
	Image    string
	Featured bool
}

// BlogUsecase manages blog post summaries. Lookups accept an id or a slug.
type BlogUsecase interface {
	ListBlogs(ctx context.Context) ([]*entity.Blog, error)
	GetBlog(ctx context.Context, idOrSlug string) (*entity.Blog, error)
	CreateBlog(ctx context.Context, input *CreateBlogInput) (*entity.Blog, error)

	// ImportBlog derives title, slug, excerpt and read time from a markdown file and creates the post.
	ImportBlog(ctx context.Context, input *ImportBlogInput) (*entity.Blog, error)

	UpdateBlog(ctx context.Context, idOrSlug string, input *UpdateBlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, idOrSlug string) error
}
