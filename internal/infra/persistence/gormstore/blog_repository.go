package gormstore

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// CreateBlog persists a new blog; a taken slug yields repository.ErrDuplicateSlug.
func (repo *blogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

func (repo *blogRepository) FindBlogByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *blogRepository) FindBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *blogRepository) findOne(ctx context.Context, query string, arg any) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&blogM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog")
	}

	return toBlogDomain(&blogM), nil
}

func (repo *blogRepository) ListBlogs(ctx context.Context) ([]*entity.Blog, error) {
	var blogModels []*model.BlogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

func (repo *blogRepository) UpdateBlog(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	result := repo.db.WithContext(ctx).
		Model(blogM).
		Select("*").
		Omit("id", "created_at").
		Updates(blogM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

func (repo *blogRepository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:          data.ID,
		Slug:        data.Slug,
		Title:       data.Title,
		Excerpt:     data.Excerpt,
		Image:       data.Image,
		Category:    data.Category,
		Author:      data.Author,
		Date:        data.Date,
		ReadTime:    data.ReadTime,
		Featured:    data.Featured,
		ContentPath: data.ContentPath,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:          data.ID,
		Slug:        data.Slug,
		Title:       data.Title,
		Excerpt:     data.Excerpt,
		Image:       data.Image,
		Category:    data.Category,
		Author:      data.Author,
		Date:        data.Date,
		ReadTime:    data.ReadTime,
		Featured:    data.Featured,
		ContentPath: data.ContentPath,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
