package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ticketService struct {
	ticketRepo    repository.TicketRepository
	sequence      service.SequenceGenerator
	qrCodeService service.QRCodeService
	publisher     service.EventPublisher
	startAt       int64
	now           func() time.Time
	logger        *slog.Logger
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TicketRepo    repository.TicketRepository
	Sequence      service.SequenceGenerator
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewTicketService creates the ticket usecase.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		ticketRepo:    params.TicketRepo,
		sequence:      params.Sequence,
		qrCodeService: params.QRCodeService,
		publisher:     params.Publisher,
		startAt:       params.Config.TicketSequence.StartAt,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *ticketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PrepareSequence offsets the counter by the existing tickets so numbering continues where a
// count-based store left off.
func (srv *ticketService) PrepareSequence(ctx context.Context) error {
	count, err := srv.ticketRepo.CountTickets(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count tickets")
	}

	if err := srv.sequence.Seed(ctx, constants.SequenceTicket, srv.startAt+count); err != nil {
		return errors.Wrap(err, "failed to seed ticket sequence")
	}

	return nil
}

func (srv *ticketService) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	tickets, err := srv.ticketRepo.ListTickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return tickets, nil
}

func (srv *ticketService) GetTicket(ctx context.Context, idOrTicketID string) (*entity.Ticket, error) {
	return srv.findTicket(ctx, idOrTicketID)
}

func (srv *ticketService) CreateTicket(ctx context.Context, input *usecase.CreateTicketInput) (*entity.Ticket, error) {
	ticket := &entity.Ticket{
		TicketID: strings.TrimSpace(input.TicketID),
		Subject:  strings.TrimSpace(input.Subject),
		Customer: strings.TrimSpace(input.Customer),
		Priority: input.Priority,
		Status:   input.Status,
		Date:     strings.TrimSpace(input.Date),
		Comment:  input.Comment,
	}
	if ticket.Priority == "" {
		ticket.Priority = entity.PriorityMedium
	}
	if ticket.Status == "" {
		ticket.Status = entity.StatusOpen
	}
	if ticket.Date == "" {
		ticket.Date = entity.TicketDate(srv.now())
	}
	if err := validateTicket(ticket); err != nil {
		return nil, err
	}

	if ticket.TicketID == "" {
		n, err := srv.sequence.Next(ctx, constants.SequenceTicket)
		if err != nil {
			return nil, errors.Wrap(err, "failed to allocate ticket number")
		}
		ticket.TicketID = entity.FormatTicketID(n)
	}

	if err := srv.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, mapTicketWriteError(err, "failed to create ticket")
	}

	srv.log(ctx).Info("Ticket created", slog.String("ticket_id", ticket.TicketID), slog.String("priority", string(ticket.Priority)))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventTicketCreated, ticket.TicketID, ticket)

	return ticket, nil
}

// UpdateTicket assigns the supplied fields. Status may move between any two states.
func (srv *ticketService) UpdateTicket(ctx context.Context, idOrTicketID string, input *usecase.UpdateTicketInput) (*entity.Ticket, error) {
	ticket, err := srv.findTicket(ctx, idOrTicketID)
	if err != nil {
		return nil, err
	}

	if input.Subject != nil {
		ticket.Subject = strings.TrimSpace(*input.Subject)
	}
	if input.Customer != nil {
		ticket.Customer = strings.TrimSpace(*input.Customer)
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Date != nil {
		ticket.Date = *input.Date
	}
	if input.Comment != nil {
		ticket.Comment = *input.Comment
	}
	if err := validateTicket(ticket); err != nil {
		return nil, err
	}

	if err := srv.ticketRepo.UpdateTicket(ctx, ticket); err != nil {
		return nil, mapTicketWriteError(err, "failed to update ticket")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventTicketUpdated, ticket.TicketID, ticket)

	return ticket, nil
}

func (srv *ticketService) DeleteTicket(ctx context.Context, idOrTicketID string) error {
	ticket, err := srv.findTicket(ctx, idOrTicketID)
	if err != nil {
		return err
	}

	if err := srv.ticketRepo.DeleteTicket(ctx, ticket.ID); err != nil {
		return mapTicketWriteError(err, "failed to delete ticket")
	}

	srv.log(ctx).Info("Ticket deleted", slog.String("ticket_id", ticket.TicketID))

	return nil
}

type ticketCSVRow struct {
	TicketID  string `csv:"Ticket ID"`
	Subject   string `csv:"Subject"`
	Customer  string `csv:"Customer"`
	Priority  string `csv:"Priority"`
	Status    string `csv:"Status"`
	Date      string `csv:"Date"`
	Comment   string `csv:"Comment"`
	CreatedAt string `csv:"Created At"`
}

func (srv *ticketService) ExportTickets(ctx context.Context, w io.Writer) error {
	tickets, err := srv.ListTickets(ctx)
	if err != nil {
		return err
	}

	rows := make([]*ticketCSVRow, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, &ticketCSVRow{
			TicketID:  t.TicketID,
			Subject:   t.Subject,
			Customer:  t.Customer,
			Priority:  string(t.Priority),
			Status:    string(t.Status),
			Date:      t.Date,
			Comment:   t.Comment,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return errors.Wrap(err, "failed to write tickets csv")
	}

	return nil
}

func (srv *ticketService) TicketQRCode(ctx context.Context, idOrTicketID string) ([]byte, error) {
	ticket, err := srv.findTicket(ctx, idOrTicketID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateTicketQR(ticket.TicketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render ticket qr code")
	}

	return png, nil
}

// findTicket tries the primary key first and falls back to the human-facing ticket id.
func (srv *ticketService) findTicket(ctx context.Context, idOrTicketID string) (*entity.Ticket, error) {
	if id, ok := parseID(idOrTicketID); ok {
		ticket, err := srv.ticketRepo.FindTicketByID(ctx, id)
		if err == nil {
			return ticket, nil
		}
		if !errors.Is(err, repository.ErrTicketNotFound) {
			return nil, errors.Wrap(err, "failed to find ticket by id")
		}
	}

	ticket, err := srv.ticketRepo.FindTicketByTicketID(ctx, idOrTicketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrTicketNotFound, "no ticket with id or ticketId %q", idOrTicketID)
		}

		return nil, errors.Wrap(err, "failed to find ticket by ticketId")
	}

	return ticket, nil
}

func validateTicket(ticket *entity.Ticket) error {
	var fields []domainerrors.FieldError
	if ticket.Subject == "" {
		fields = append(fields, domainerrors.FieldError{Field: "subject", Message: "Ticket subject is required"})
	}
	if ticket.Customer == "" {
		fields = append(fields, domainerrors.FieldError{Field: "customer", Message: "Customer name is required"})
	}
	if !ticket.Priority.IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "priority", Message: "Priority must be one of Low, Medium, High"})
	}
	if !ticket.Status.IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "status", Message: "Status must be one of Open, In Progress, Closed"})
	}

	if len(fields) > 0 {
		return errors.WithStack(domainerrors.NewValidationError(fields...))
	}

	return nil
}

func mapTicketWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateTicketID):
		return errors.Wrap(domainerrors.ErrDuplicateTicketID, msg)
	case errors.Is(err, repository.ErrTicketNotFound):
		return errors.Wrap(domainerrors.ErrTicketNotFound, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
