package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
}

// ServiceHandler serves the offered service cards.
type ServiceHandler struct {
	serviceUC usecase.ServiceUsecase
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: params.ServiceUC,
	}
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.serviceUC.ListServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, services)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	svc, err := h.serviceUC.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, svc)
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req usecase.CreateServiceInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	svc, err := h.serviceUC.CreateService(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, svc)
}

// UpdateService serves both PUT and PATCH; only the fields present in the body change.
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	var req usecase.UpdateServiceInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	svc, err := h.serviceUC.UpdateService(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	if err := h.serviceUC.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Service deleted successfully")
}
