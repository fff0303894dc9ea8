package model

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsModel is the GORM-specific struct for the single-row 'settings' table.
type SettingsModel struct {
	ID                    uint                        `gorm:"primaryKey;autoIncrement:false"`
	ShowScrollingHeadline bool                        `gorm:"not null"`
	ShowSidebar           bool                        `gorm:"not null"`
	EnableTicketing       bool                        `gorm:"not null"`
	MaintenanceMode       bool                        `gorm:"not null"`
	Headlines             datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}
