package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImageCleanupTask is a remote image delete that failed and is waiting to be retried.
type ImageCleanupTask struct {
	ID            uuid.UUID
	PublicID      string
	URL           string
	Attempts      int
	LastError     string
	NextAttemptAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
