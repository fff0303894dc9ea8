package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// TicketPriority is the urgency of a support ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

// IsValid checks the priority against the known values.
func (p TicketPriority) IsValid() bool {
	return slices.Contains([]TicketPriority{PriorityLow, PriorityMedium, PriorityHigh}, p)
}

// TicketStatus is the lifecycle state of a support ticket. Any transition is allowed.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusClosed     TicketStatus = "Closed"
)

// IsValid checks the status against the known values.
func (s TicketStatus) IsValid() bool {
	return slices.Contains([]TicketStatus{StatusOpen, StatusInProgress, StatusClosed}, s)
}

// TicketDateLayout is the calendar-date format stored in Ticket.Date.
const TicketDateLayout = "2006-01-02"

// Ticket is a customer support request.
type Ticket struct {
	ID        uuid.UUID      `json:"id"`
	TicketID  string         `json:"ticketId"`
	Subject   string         `json:"subject"`
	Customer  string         `json:"customer"`
	Priority  TicketPriority `json:"priority"`
	Status    TicketStatus   `json:"status"`
	Date      string         `json:"date"`
	Comment   string         `json:"comment"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FormatTicketID renders a sequence number as a human-facing ticket id.
func FormatTicketID(n int64) string {
	return fmt.Sprintf("TCK-%d", n)
}

// TicketDate renders t as a ticket calendar date in UTC.
func TicketDate(t time.Time) string {
	return t.UTC().Format(TicketDateLayout)
}
