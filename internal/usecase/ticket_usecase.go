package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// CreateTicketInput is a support request. Empty optional fields get defaults.
type CreateTicketInput struct {
	TicketID string                `json:"ticketId"`
	Subject  string                `json:"subject" validate:"required"`
	Customer string                `json:"customer" validate:"required"`
	Priority entity.TicketPriority `json:"priority"`
	Status   entity.TicketStatus   `json:"status"`
	Date     string                `json:"date"`
	Comment  string                `json:"comment"`
}

// UpdateTicketInput carries the fields to change; nil fields are kept.
type UpdateTicketInput struct {
	Subject  *string                `json:"subject" validate:"omitempty,min=1"`
	Customer *string                `json:"customer" validate:"omitempty,min=1"`
	Priority *entity.TicketPriority `json:"priority"`
	Status   *entity.TicketStatus   `json:"status"`
	Date     *string                `json:"date"`
	Comment  *string                `json:"comment"`
}

// TicketUsecase manages support tickets. Lookups accept an id or a ticketId.
type TicketUsecase interface {
	// PrepareSequence seeds the ticket counter from the current ticket count when it does not exist.
	PrepareSequence(ctx context.Context) error

	ListTickets(ctx context.Context) ([]*entity.Ticket, error)
	GetTicket(ctx context.Context, idOrTicketID string) (*entity.Ticket, error)

	// CreateTicket assigns a ticketId and date when the input has none.
	CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.Ticket, error)

	UpdateTicket(ctx context.Context, idOrTicketID string, input *UpdateTicketInput) (*entity.Ticket, error)
	DeleteTicket(ctx context.Context, idOrTicketID string) error

	// ExportTickets writes every ticket as CSV, newest first.
	ExportTickets(ctx context.Context, w io.Writer) error

	// TicketQRCode returns a PNG pointing at the ticket's support page.
	TicketQRCode(ctx context.Context, idOrTicketID string) ([]byte, error)
}
