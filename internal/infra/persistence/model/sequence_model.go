package model

import "time"

// SequenceModel is a named monotonically increasing counter.
type SequenceModel struct {
	Name      string `gorm:"type:varchar(100);primaryKey"`
	Value     int64  `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SequenceModel) TableName() string {
	return "sequences"
}
