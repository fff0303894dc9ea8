// Package model holds the GORM table structs. Entities never reach the database directly.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// assignID fills a missing primary key with a time-ordered UUID.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate id")
	}
	*id = generated

	return nil
}

// All lists every model for migration.
func All() []any {
	return []any{
		&ProductModel{},
		&ServiceModel{},
		&BlogModel{},
		&TicketModel{},
		&SettingsModel{},
		&AdminUserModel{},
		&SequenceModel{},
		&ImageCleanupTaskModel{},
	}
}
