package handler

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Config   *config.Config
}

// UploadHandler stores loose images for other pages to reference.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	limits   imageLimits
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		limits:   newImageLimits(params.Config),
	}
}

// UploadImage handles POST /upload with a single "image" file.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	files, err := readImages(c, "image", imageLimits{maxFiles: 1, maxFileSize: h.limits.maxFileSize})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.WithStack(domainerrors.ErrNoImageFile)
	}

	stored, err := h.uploadUC.UploadImage(c.Request().Context(), files[0])
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stored)
}

// UploadImages handles POST /upload/multiple with up to five "images" files.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	files, err := readImages(c, "images", h.limits)
	if err != nil {
		return err
	}

	stored, err := h.uploadUC.UploadImages(c.Request().Context(), files)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stored)
}
