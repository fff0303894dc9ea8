package handler

import (
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Multipart file fields. Update names its uploads apart from the kept existingImages.
const (
	productImagesField    = "images"
	productNewImagesField = "newImages"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
}

// ProductHandler serves the product catalog. Writes are multipart forms carrying the image files.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	limits    imageLimits
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		limits:    newImageLimits(params.Config),
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	form, err := newFormFields(c)
	if err != nil {
		return err
	}

	input := &usecase.CreateProductInput{
		Name:          form.str("name"),
		Category:      form.str("category"),
		OriginalPrice: form.float("originalPrice"),
		Badge:         form.str("badge"),
		Specs:         form.list("specs"),
		Description:   form.str("description"),
	}
	if price := form.float("price"); price != nil {
		input.Price = *price
	} else if form.str("price") == "" {
		form.fail("price", "price is required")
	}
	if inStock := form.boolean("inStock"); inStock != nil {
		input.InStock = *inStock
	} else {
		input.InStock = true
	}
	if err := form.err(); err != nil {
		return err
	}

	input.Images, err = readImages(c, productImagesField, h.limits)
	if err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	form, err := newFormFields(c)
	if err != nil {
		return err
	}

	input := &usecase.UpdateProductInput{
		Name:           form.str("name"),
		Category:       form.str("category"),
		Price:          form.float("price"),
		OriginalPrice:  form.float("originalPrice"),
		Badge:          form.optStr("badge"),
		InStock:        form.boolean("inStock"),
		SpecsSet:       form.has("specs"),
		Description:    form.str("description"),
		ExistingImages: form.jsonList("existingImages"),
	}
	if input.SpecsSet {
		input.Specs = form.list("specs")
	}
	if err := form.err(); err != nil {
		return err
	}

	lenient := h.limits
	lenient.truncate = true
	input.NewImages, err = readImages(c, productNewImagesField, lenient)
	if err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// AppendImages handles POST /products/:id/images
func (h *ProductHandler) AppendImages(c echo.Context) error {
	files, err := readImages(c, productImagesField, h.limits)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.WithStack(domainerrors.ErrNoImagesProvided)
	}

	product, err := h.productUC.AppendImages(c.Request().Context(), c.Param("id"), files)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}

// RemoveImage handles DELETE /products/:id/images/:imageIndex
func (h *ProductHandler) RemoveImage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("imageIndex"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidImageIndex)
	}

	product, err := h.productUC.RemoveImage(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}
