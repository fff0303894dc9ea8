package gormstore

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSequenceNotSeeded is returned by Next for a counter that was never seeded.
var ErrSequenceNotSeeded = errors.New("sequence not seeded")

// sequenceRepository keeps counters in the 'sequences' table.
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceGenerator is the constructor for the table-backed service.SequenceGenerator.
func NewSequenceGenerator(db *gorm.DB) service.SequenceGenerator {
	return &sequenceRepository{
		db: db,
	}
}

func (repo *sequenceRepository) Seed(ctx context.Context, name string, start int64) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SequenceModel{Name: name, Value: start}).Error; err != nil {
		return errors.Wrapf(err, "failed to seed sequence %s", name)
	}

	return nil
}

// Next increments in place and reads back inside one transaction; the UPDATE's row
// lock serializes concurrent callers until commit.
func (repo *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var seq model.SequenceModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.SequenceModel{}).
			Where("name = ?", name).
			Update("value", gorm.Expr("value + ?", 1))
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to increment sequence")
		}
		if result.RowsAffected == 0 {
			return ErrSequenceNotSeeded
		}

		return errors.Wrap(tx.Where("name = ?", name).First(&seq).Error, "failed to read sequence")
	})
	if err != nil {
		return 0, err
	}

	return seq.Value, nil
}
