package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceModel is the GORM-specific struct for the 'services' table.
// Bool columns carry no database default so an explicit false is never replaced on insert.
type ServiceModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title        string                      `gorm:"type:varchar(255);not null"`
	Description  string                      `gorm:"type:text;not null"`
	Icon         string                      `gorm:"type:varchar(100);not null"`
	Features     datatypes.JSONSlice[string] `gorm:"not null"`
	Price        string                      `gorm:"type:varchar(100);not null"`
	Color        string                      `gorm:"type:varchar(50);not null"`
	Popular      bool                        `gorm:"not null"`
	DisplayOrder int                         `gorm:"not null;index"`
	Enabled      bool                        `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
