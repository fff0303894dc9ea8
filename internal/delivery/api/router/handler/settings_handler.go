package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves the site settings singleton.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
	}
}

// UpdateSettingsRequest holds the toggles to change. Absent or null fields are kept.
type UpdateSettingsRequest struct {
	ShowScrollingHeadline *bool     `json:"showScrollingHeadline"`
	ShowSidebar           *bool     `json:"showSidebar"`
	EnableTicketing       *bool     `json:"enableTicketing"`
	MaintenanceMode       *bool     `json:"maintenanceMode"`
	Headlines             *[]string `json:"headlines"`
}

func (r *UpdateSettingsRequest) patch() entity.SettingsPatch {
	p := entity.SettingsPatch{
		ShowScrollingHeadline: r.ShowScrollingHeadline,
		ShowSidebar:           r.ShowSidebar,
		EnableTicketing:       r.EnableTicketing,
		MaintenanceMode:       r.MaintenanceMode,
	}
	if r.Headlines != nil {
		p.Headlines = *r.Headlines
		p.HeadlinesSet = true
	}

	return p
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings serves both PUT and PATCH as a merge of the supplied fields.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), req.patch())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, settings)
}
