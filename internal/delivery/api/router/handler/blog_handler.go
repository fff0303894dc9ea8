package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/fx"
)

// maxBlogFileSize bounds an imported markdown article.
const maxBlogFileSize = 1 << 20

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
}

// BlogHandler serves blog post summaries.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
}

// NewBlogHandler is the constructor for BlogHandler
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
	}
}

func (h *BlogHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.blogUC.ListBlogs(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, blogs)
}

// GetBlog accepts either the id or the slug.
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogUC.GetBlog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlog(c echo.Context) error {
	var req usecase.CreateBlogInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	blog, err := h.blogUC.CreateBlog(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, blog)
}

// ImportBlog creates a post from an uploaded markdown file in the "file" field.
func (h *BlogHandler) ImportBlog(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errors.Wrap(domainerrors.ErrNoBlogFile, err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxBlogFileSize+1))
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}
	if len(content) > maxBlogFileSize {
		return errors.WithStack(domainerrors.ErrFileTooLarge)
	}

	input := &usecase.ImportBlogInput{
		Filename: fh.Filename,
		Content:  content,
		Category: c.FormValue("category"),
		Author:   c.FormValue("author"),
		Image:    c.FormValue("image"),
		Featured: cast.ToBool(c.FormValue("featured")),
	}

	blog, err := h.blogUC.ImportBlog(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, blog)
}

func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	var req usecase.UpdateBlogInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	blog, err := h.blogUC.UpdateBlog(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	if err := h.blogUC.DeleteBlog(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Blog deleted successfully")
}
