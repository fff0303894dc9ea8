package usecase

import "context"

// SweepReport summarises one pass over the cleanup queue.
type SweepReport struct {
	Processed int
	Deleted   int
	Retried   int
	Abandoned int
}

// ImageCleanupUsecase removes remote images without failing the caller.
type ImageCleanupUsecase interface {
	// DiscardImages deletes the images now; failures are queued for the sweeper.
	DiscardImages(ctx context.Context, urls ...string)

	// Sweep retries the due queued deletes.
	Sweep(ctx context.Context) (*SweepReport, error)
}
