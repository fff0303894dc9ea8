package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TicketHandlerParams holds dependencies for TicketHandler, injected by Fx.
type TicketHandlerParams struct {
	fx.In

	TicketUC usecase.TicketUsecase
	Logger   *slog.Logger
}

// TicketHandler serves support tickets. Only creation is public.
type TicketHandler struct {
	ticketUC usecase.TicketUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewTicketHandler is the constructor for TicketHandler
func NewTicketHandler(params TicketHandlerParams) *TicketHandler {
	return &TicketHandler{
		ticketUC: params.TicketUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// CreateTicket is the public support form. Only admins may pick the ticketId or the
// initial status; anonymous callers always get a sequenced id and an open ticket.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var req usecase.CreateTicketInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if !apimiddleware.HasRole(c, entity.RoleAdmin) {
		req.TicketID = ""
		req.Status = ""
	}

	ticket, err := h.ticketUC.CreateTicket(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, ticket)
}

func (h *TicketHandler) ListTickets(c echo.Context) error {
	tickets, err := h.ticketUC.ListTickets(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tickets)
}

// ExportTickets renders the whole ticket list as a CSV download.
func (h *TicketHandler) ExportTickets(c echo.Context) error {
	ctx := c.Request().Context()

	var buf bytes.Buffer
	if err := h.ticketUC.ExportTickets(ctx, &buf); err != nil {
		return err
	}

	filename := fmt.Sprintf("tickets-%s.csv", h.now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Tickets exported", slog.Int("bytes", buf.Len()))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.ticketUC.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ticket)
}

// TicketQRCode returns a PNG linking to the ticket.
func (h *TicketHandler) TicketQRCode(c echo.Context) error {
	png, err := h.ticketUC.TicketQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *TicketHandler) UpdateTicket(c echo.Context) error {
	var req usecase.UpdateTicketInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ticket, err := h.ticketUC.UpdateTicket(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ticket)
}

func (h *TicketHandler) DeleteTicket(c echo.Context) error {
	if err := h.ticketUC.DeleteTicket(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Ticket deleted successfully")
}
