package service

import "context"

// SequenceGenerator hands out strictly increasing numbers per named counter.
type SequenceGenerator interface {
	// Seed creates the counter with value start when it does not exist yet.
	Seed(ctx context.Context, name string, start int64) error

	// Next increments the counter atomically and returns the new value.
	Next(ctx context.Context, name string) (int64, error)
}
