package service

import (
	"context"
	"time"
)

// EventType names a catalog or ticket change.
type EventType string

const (
	EventProductCreated EventType = "product.created"
	EventProductUpdated EventType = "product.updated"
	EventProductDeleted EventType = "product.deleted"
	EventServiceChanged EventType = "service.changed"
	EventBlogChanged    EventType = "blog.changed"
	EventTicketCreated  EventType = "ticket.created"
	EventTicketUpdated  EventType = "ticket.updated"
	EventSettingsUpdate EventType = "settings.updated"
)

// Event is a change notification published after a successful write.
type Event struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       EventType `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event; callers treat failures as non-fatal.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
