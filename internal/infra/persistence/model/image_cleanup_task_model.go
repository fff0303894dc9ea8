package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageCleanupTaskModel is the GORM-specific struct for the 'image_cleanup_tasks' table.
type ImageCleanupTaskModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PublicID      string    `gorm:"type:varchar(1024);not null"`
	URL           string    `gorm:"type:varchar(2048);not null"`
	Attempts      int       `gorm:"not null"`
	LastError     string    `gorm:"type:text;not null"`
	NextAttemptAt time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageCleanupTaskModel) TableName() string {
	return "image_cleanup_tasks"
}

func (m *ImageCleanupTaskModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
