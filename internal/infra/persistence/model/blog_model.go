package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogModel is the GORM-specific struct for the 'blogs' table.
type BlogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Excerpt     string    `gorm:"type:text;not null"`
	Image       string    `gorm:"type:varchar(1024);not null"`
	Category    string    `gorm:"type:varchar(255);not null"`
	Author      string    `gorm:"type:varchar(255);not null"`
	Date        string    `gorm:"type:varchar(50);not null"`
	ReadTime    string    `gorm:"type:varchar(50);not null"`
	Featured    bool      `gorm:"not null"`
	ContentPath string    `gorm:"type:varchar(1024);not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

func (m *BlogModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
