package handler

import (
	"net/http"
	"strconv"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	ImageStore service.ImageStore
}

// MediaHandler streams stored images when the bucket has no public endpoint of its own.
type MediaHandler struct {
	imageStore service.ImageStore
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		imageStore: params.ImageStore,
	}
}

// Serve handles GET /media/*
func (h *MediaHandler) Serve(c echo.Context) error {
	obj, err := h.imageStore.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, service.ErrImageObjectNotFound) {
			return errors.Wrap(domainerrors.ErrImageNotFound, c.Param("*"))
		}

		return err
	}
	defer obj.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	header.Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, obj.ContentType, obj)
}
