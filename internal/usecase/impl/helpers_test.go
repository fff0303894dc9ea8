package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: 8,
		},
		Cleanup: &config.CleanupConfig{
			Enabled:     true,
			MaxAttempts: 3,
			BatchSize:   10,
			RetryDelay:  time.Minute,
		},
		TicketSequence: &config.TicketSequenceConfig{
			Provider: "gorm",
			StartAt:  1000,
		},
	}
}

func imageFiles(names ...string) []service.ImageUpload {
	files := make([]service.ImageUpload, 0, len(names))
	for _, name := range names {
		files = append(files, service.ImageUpload{Filename: name, ContentType: "image/png", Data: []byte(name)})
	}

	return files
}

// storeByFilename fakes an image host that derives the URL from the file name.
func storeByFilename(_ context.Context, img service.ImageUpload) (*service.StoredImage, error) {
	return &service.StoredImage{URL: "https://img.test/" + img.Filename, PublicID: img.Filename}, nil
}
