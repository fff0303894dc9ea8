package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketServiceFixtures struct {
	service    *ticketService
	ticketRepo *mockRepo.MockTicketRepository
	sequence   *mockSvc.MockSequenceGenerator
	qrCode     *mockSvc.MockQRCodeService
}

func createTestTicketService(t *testing.T) ticketServiceFixtures {
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	sequence := mockSvc.NewMockSequenceGenerator(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewTicketService(TicketServiceParams{
		TicketRepo:    ticketRepo,
		Sequence:      sequence,
		QRCodeService: qrCode,
		Publisher:     publisher,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}).(*ticketService)
	svc.now = func() time.Time { return time.Date(2026, 5, 17, 23, 30, 0, 0, time.UTC) }

	return ticketServiceFixtures{
		service:    svc,
		ticketRepo: ticketRepo,
		sequence:   sequence,
		qrCode:     qrCode,
	}
}

func TestTicketService_PrepareSequence_OffsetsByExistingTickets(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.ticketRepo.EXPECT().CountTickets(ctx).Return(int64(4), nil)
	fx.sequence.EXPECT().Seed(ctx, constants.SequenceTicket, int64(1004)).Return(nil)

	require.NoError(t, fx.service.PrepareSequence(ctx))
}

func TestTicketService_CreateTicket_AssignsDefaults(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.sequence.EXPECT().Next(ctx, constants.SequenceTicket).Return(int64(1001), nil)
	fx.ticketRepo.EXPECT().CreateTicket(ctx, mock.AnythingOfType("*entity.Ticket")).Return(nil)

	ticket, err := fx.service.CreateTicket(ctx, &usecase.CreateTicketInput{
		Subject:  "Screen flickers",
		Customer: "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "TCK-1001", ticket.TicketID)
	assert.Equal(t, entity.PriorityMedium, ticket.Priority)
	assert.Equal(t, entity.StatusOpen, ticket.Status)
	assert.Equal(t, "2026-05-17", ticket.Date)
	assert.Equal(t, "", ticket.Comment)
}

func TestTicketService_CreateTicket_SequentialIDsIncrease(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.sequence.EXPECT().Next(ctx, constants.SequenceTicket).Return(int64(1001), nil).Once()
	fx.sequence.EXPECT().Next(ctx, constants.SequenceTicket).Return(int64(1002), nil).Once()
	fx.ticketRepo.EXPECT().CreateTicket(ctx, mock.AnythingOfType("*entity.Ticket")).Return(nil).Times(2)

	input := &usecase.CreateTicketInput{Subject: "Battery", Customer: "Lee"}
	first, err := fx.service.CreateTicket(ctx, input)
	require.NoError(t, err)
	second, err := fx.service.CreateTicket(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "TCK-1001", first.TicketID)
	assert.Equal(t, "TCK-1002", second.TicketID)
}

func TestTicketService_CreateTicket_KeepsExplicitID(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.ticketRepo.EXPECT().
		CreateTicket(ctx, mock.MatchedBy(func(ticket *entity.Ticket) bool { return ticket.TicketID == "TCK-42" })).
		Return(nil)

	ticket, err := fx.service.CreateTicket(ctx, &usecase.CreateTicketInput{
		TicketID: "TCK-42",
		Subject:  "Keyboard",
		Customer: "Sam",
		Priority: entity.PriorityHigh,
		Date:     "2024-01-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", ticket.Date)
}

func TestTicketService_CreateTicket_DuplicateID(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.ticketRepo.EXPECT().CreateTicket(ctx, mock.AnythingOfType("*entity.Ticket")).Return(repository.ErrDuplicateTicketID)

	_, err := fx.service.CreateTicket(ctx, &usecase.CreateTicketInput{TicketID: "TCK-42", Subject: "x", Customer: "y"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateTicketID)
}

func TestTicketService_CreateTicket_InvalidEnumDoesNotConsumeNumber(t *testing.T) {
	fx := createTestTicketService(t)

	_, err := fx.service.CreateTicket(context.Background(), &usecase.CreateTicketInput{
		Subject:  "x",
		Customer: "y",
		Priority: "Urgent",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "priority", validationErr.Fields()[0].Field)
}

func TestTicketService_GetTicket_FallsBackToTicketID(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	want := &entity.Ticket{ID: uuid.New(), TicketID: "TCK-1001"}

	fx.ticketRepo.EXPECT().FindTicketByTicketID(ctx, "TCK-1001").Return(want, nil)

	got, err := fx.service.GetTicket(ctx, "TCK-1001")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTicketService_GetTicket_DoubleMiss(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.ticketRepo.EXPECT().FindTicketByID(ctx, id).Return(nil, repository.ErrTicketNotFound)
	fx.ticketRepo.EXPECT().FindTicketByTicketID(ctx, id.String()).Return(nil, repository.ErrTicketNotFound)

	_, err := fx.service.GetTicket(ctx, id.String())
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotFound)
}

func TestTicketService_UpdateTicket_ReopensClosedTicket(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	stored := &entity.Ticket{
		ID:       uuid.New(),
		TicketID: "TCK-1001",
		Subject:  "Fan noise",
		Customer: "Ana",
		Priority: entity.PriorityLow,
		Status:   entity.StatusClosed,
	}
	status := entity.StatusOpen
	comment := "Customer called back"

	fx.ticketRepo.EXPECT().FindTicketByID(ctx, stored.ID).Return(stored, nil)
	fx.ticketRepo.EXPECT().UpdateTicket(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateTicket(ctx, stored.ID.String(), &usecase.UpdateTicketInput{
		Status:  &status,
		Comment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOpen, updated.Status)
	assert.Equal(t, comment, updated.Comment)
	assert.Equal(t, "TCK-1001", updated.TicketID)
}

func TestTicketService_DeleteTicket_ByTicketID(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	stored := &entity.Ticket{ID: uuid.New(), TicketID: "TCK-7"}

	fx.ticketRepo.EXPECT().FindTicketByTicketID(ctx, "TCK-7").Return(stored, nil)
	fx.ticketRepo.EXPECT().DeleteTicket(ctx, stored.ID).Return(nil)

	require.NoError(t, fx.service.DeleteTicket(ctx, "TCK-7"))
}

func TestTicketService_ExportTickets(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.ticketRepo.EXPECT().ListTickets(ctx).Return([]*entity.Ticket{
		{TicketID: "TCK-1002", Subject: "Screen, cracked", Customer: "Ana", Priority: entity.PriorityHigh, Status: entity.StatusInProgress, Date: "2026-05-17"},
		{TicketID: "TCK-1001", Subject: "Fan", Customer: "Lee", Priority: entity.PriorityLow, Status: entity.StatusOpen, Date: "2026-05-16"},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, fx.service.ExportTickets(ctx, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Ticket ID,Subject,Customer,Priority,Status,Date,Comment,Created At", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `TCK-1002,"Screen, cracked",Ana,High,In Progress,2026-05-17`))
}

func TestTicketService_TicketQRCode(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	stored := &entity.Ticket{ID: uuid.New(), TicketID: "TCK-1001"}

	fx.ticketRepo.EXPECT().FindTicketByTicketID(ctx, "TCK-1001").Return(stored, nil)
	fx.qrCode.EXPECT().GenerateTicketQR("TCK-1001").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.TicketQRCode(ctx, "TCK-1001")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
