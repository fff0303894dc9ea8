package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketModel is the GORM-specific struct for the 'tickets' table.
type TicketModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketID  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Customer  string    `gorm:"type:varchar(255);not null"`
	Priority  string    `gorm:"type:varchar(20);not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Date      string    `gorm:"type:varchar(20);not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

func (m *TicketModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
