package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Category      string                      `gorm:"type:varchar(255);not null"`
	Price         float64                     `gorm:"not null"`
	OriginalPrice *float64
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	Badge         string                      `gorm:"type:varchar(100);not null"`
	InStock       bool                        `gorm:"not null"`
	Specs         datatypes.JSONSlice[string] `gorm:"not null"`
	Description   string                      `gorm:"type:text;not null"`
	CreatedAt     time.Time                   `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
