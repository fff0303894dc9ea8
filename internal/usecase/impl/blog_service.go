package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Defaults for posts imported from a markdown file.
const (
	importedBlogImage    = "https://images.unsplash.com/photo-1432821596592-e2c18b78144f?auto=format&fit=crop&w=800&q=80"
	importedBlogCategory = "Tech"
	importedBlogAuthor   = "Admin"
	importedBlogDate     = "Jan 2, 2006"
	excerptLength        = 150
	wordsPerMinute       = 200
)

type blogService struct {
	blogRepo  repository.BlogRepository
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo  repository.BlogRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewBlogService creates the blog usecase.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo:  params.BlogRepo,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *blogService) ListBlogs(ctx context.Context) ([]*entity.Blog, error) {
	blogs, err := srv.blogRepo.ListBlogs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

func (srv *blogService) GetBlog(ctx context.Context, idOrSlug string) (*entity.Blog, error) {
	return srv.findBlog(ctx, idOrSlug)
}

func (srv *blogService) CreateBlog(ctx context.Context, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Slug:        strings.TrimSpace(input.Slug),
		Title:       strings.TrimSpace(input.Title),
		Excerpt:     strings.TrimSpace(input.Excerpt),
		Image:       input.Image,
		Category:    input.Category,
		Author:      input.Author,
		Date:        input.Date,
		ReadTime:    input.ReadTime,
		Featured:    input.Featured,
		ContentPath: input.ContentPath,
	}

	return srv.create(ctx, blog)
}

// ImportBlog mirrors what the admin panel does with a dropped markdown file.
func (srv *blogService) ImportBlog(ctx context.Context, input *usecase.ImportBlogInput) (*entity.Blog, error) {
	filename := path.Base(strings.ReplaceAll(input.Filename, "\\", "/"))
	if !strings.HasSuffix(filename, ".md") || filename == ".md" {
		return nil, errors.Wrapf(domainerrors.ErrInvalidBlogFile, "file %q", input.Filename)
	}

	text := string(input.Content)
	base := strings.TrimSuffix(filename, ".md")

	blog := &entity.Blog{
		Slug:        base,
		Title:       titleFromFilename(base),
		Excerpt:     excerptOf(text),
		Image:       firstNonEmpty(input.Image, importedBlogImage),
		Category:    firstNonEmpty(input.Category, importedBlogCategory),
		Author:      firstNonEmpty(input.Author, importedBlogAuthor),
		Date:        srv.now().Format(importedBlogDate),
		ReadTime:    readTimeOf(text),
		Featured:    input.Featured,
		ContentPath: "/blogs/" + filename,
	}

	return srv.create(ctx, blog)
}

func (srv *blogService) UpdateBlog(ctx context.Context, idOrSlug string, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	blog, err := srv.findBlog(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		blog.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Title != nil {
		blog.Title = strings.TrimSpace(*input.Title)
	}
	if input.Excerpt != nil {
		blog.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.Image != nil {
		blog.Image = *input.Image
	}
	if input.Category != nil {
		blog.Category = *input.Category
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.Date != nil {
		blog.Date = *input.Date
	}
	if input.ReadTime != nil {
		blog.ReadTime = *input.ReadTime
	}
	if input.Featured != nil {
		blog.Featured = *input.Featured
	}
	if input.ContentPath != nil {
		blog.ContentPath = *input.ContentPath
	}
	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	if err := srv.blogRepo.UpdateBlog(ctx, blog); err != nil {
		return nil, mapBlogWriteError(err, "failed to update blog")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBlogChanged, blog.ID.String(), blog)

	return blog, nil
}

func (srv *blogService) DeleteBlog(ctx context.Context, idOrSlug string) error {
	blog, err := srv.findBlog(ctx, idOrSlug)
	if err != nil {
		return err
	}

	if err := srv.blogRepo.DeleteBlog(ctx, blog.ID); err != nil {
		return mapBlogWriteError(err, "failed to delete blog")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBlogChanged, blog.ID.String(), nil)

	return nil
}

func (srv *blogService) create(ctx context.Context, blog *entity.Blog) (*entity.Blog, error) {
	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	if err := srv.blogRepo.CreateBlog(ctx, blog); err != nil {
		return nil, mapBlogWriteError(err, "failed to create blog")
	}

	srv.log(ctx).Info("Blog created", slog.String("blog_id", blog.ID.String()), slog.String("slug", blog.Slug))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBlogChanged, blog.ID.String(), blog)

	return blog, nil
}

// findBlog tries the primary key first and falls back to the slug.
func (srv *blogService) findBlog(ctx context.Context, idOrSlug string) (*entity.Blog, error) {
	if id, ok := parseID(idOrSlug); ok {
		blog, err := srv.blogRepo.FindBlogByID(ctx, id)
		if err == nil {
			return blog, nil
		}
		if !errors.Is(err, repository.ErrBlogNotFound) {
			return nil, errors.Wrap(err, "failed to find blog by id")
		}
	}

	blog, err := srv.blogRepo.FindBlogBySlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrBlogNotFound, "no blog with id or slug %q", idOrSlug)
		}

		return nil, errors.Wrap(err, "failed to find blog by slug")
	}

	return blog, nil
}

func validateBlog(blog *entity.Blog) error {
	var fields []domainerrors.FieldError
	if blog.Slug == "" {
		fields = append(fields, domainerrors.FieldError{Field: "slug", Message: "Blog slug is required"})
	}
	if blog.Title == "" {
		fields = append(fields, domainerrors.FieldError{Field: "title", Message: "Blog title is required"})
	}
	if blog.Excerpt == "" {
		fields = append(fields, domainerrors.FieldError{Field: "excerpt", Message: "Blog excerpt is required"})
	}

	if len(fields) > 0 {
		return errors.WithStack(domainerrors.NewValidationError(fields...))
	}

	return nil
}

func mapBlogWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateSlug):
		return errors.Wrap(domainerrors.ErrDuplicateSlug, msg)
	case errors.Is(err, repository.ErrBlogNotFound):
		return errors.Wrap(domainerrors.ErrBlogNotFound, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

// titleFromFilename turns "my-first-post" into "My first post".
func titleFromFilename(base string) string {
	title := strings.ReplaceAll(base, "-", " ")
	r, size := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return title
	}

	return string(unicode.ToUpper(r)) + title[size:]
}

func excerptOf(text string) string {
	runes := []rune(text)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}

	return string(runes) + "..."
}

func readTimeOf(text string) string {
	words := len(strings.Fields(text))
	minutes := max(1, (words+wordsPerMinute-1)/wordsPerMinute)

	return fmt.Sprintf("%d min read", minutes)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
