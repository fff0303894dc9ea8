package usecase

import (
	"context"
	"io"
)

// ImportSummary counts what an import created or skipped.
type ImportSummary struct {
	Products int
	Services int
	Tickets  int
	Blogs    int
	Settings bool
	Skipped  int
}

// ImportUsecase loads content exported from the legacy JSON file store.
type ImportUsecase interface {
	ImportLegacy(ctx context.Context, r io.Reader) (*ImportSummary, error)
}
