package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for ticket persistence.
var (
	// ErrTicketNotFound is returned when neither id nor ticketId matches.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrDuplicateTicketID is returned when the human-facing ticket id is taken.
	ErrDuplicateTicketID = errors.New("ticket id already exists")
)

// TicketRepository defines the interface for support ticket persistence.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error
	FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindTicketByTicketID(ctx context.Context, ticketID string) (*entity.Ticket, error)
	// ListTickets returns every ticket, newest first.
	ListTickets(ctx context.Context) ([]*entity.Ticket, error)
	UpdateTicket(ctx context.Context, ticket *entity.Ticket) error
	DeleteTicket(ctx context.Context, id uuid.UUID) error
	// CountTickets is used to seed the ticket sequence on a store that predates it.
	CountTickets(ctx context.Context) (int64, error)
}
