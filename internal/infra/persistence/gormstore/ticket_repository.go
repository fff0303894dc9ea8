package gormstore

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{
		db: db,
	}
}

// CreateTicket persists a ticket; a taken ticketId yields repository.ErrDuplicateTicketID.
func (repo *ticketRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM := fromTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTicketID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

func (repo *ticketRepository) FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *ticketRepository) FindTicketByTicketID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	return repo.findOne(ctx, "ticket_id = ?", ticketID)
}

func (repo *ticketRepository) findOne(ctx context.Context, query string, arg any) (*entity.Ticket, error) {
	var ticketM model.TicketModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&ticketM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	return toTicketDomain(&ticketM), nil
}

func (repo *ticketRepository) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	var ticketModels []*model.TicketModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	tickets := make([]*entity.Ticket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets, nil
}

func (repo *ticketRepository) UpdateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM := fromTicketDomain(ticket)

	result := repo.db.WithContext(ctx).
		Model(ticketM).
		Select("*").
		Omit("id", "created_at").
		Updates(ticketM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateTicketID
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ticket")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

func (repo *ticketRepository) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TicketModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete ticket")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

func (repo *ticketRepository) CountTickets(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tickets")
	}

	return count, nil
}

func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	if data == nil {
		return nil
	}

	return &entity.Ticket{
		ID:        data.ID,
		TicketID:  data.TicketID,
		Subject:   data.Subject,
		Customer:  data.Customer,
		Priority:  entity.TicketPriority(data.Priority),
		Status:    entity.TicketStatus(data.Status),
		Date:      data.Date,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTicketDomain(data *entity.Ticket) *model.TicketModel {
	if data == nil {
		return nil
	}

	return &model.TicketModel{
		ID:        data.ID,
		TicketID:  data.TicketID,
		Subject:   data.Subject,
		Customer:  data.Customer,
		Priority:  string(data.Priority),
		Status:    string(data.Status),
		Date:      data.Date,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
