// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// parseID reports whether raw is a store key. Anything else is looked up by alternate key or treated as missing.
func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// publishEvent is best-effort: a broker outage never fails the write that triggered it.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType service.EventType, entityID string, payload any) {
	event := &service.Event{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", string(eventType)),
			slog.String("entity_id", entityID),
			slog.Any("error", err))
	}
}

// uploadImages stores files in order. If one upload fails the images stored so far are discarded.
func uploadImages(ctx context.Context, store service.ImageStore, cleanup usecase.ImageCleanupUsecase, files []service.ImageUpload) ([]*service.StoredImage, error) {
	stored := make([]*service.StoredImage, 0, len(files))
	for _, file := range files {
		img, err := store.Upload(ctx, file)
		if err != nil {
			cleanup.DiscardImages(ctx, storedURLs(stored)...)

			return nil, errors.Wrapf(domainerrors.ErrImageUploadFailed, "upload %q: %v", file.Filename, err)
		}
		stored = append(stored, img)
	}

	return stored, nil
}

func storedURLs(stored []*service.StoredImage) []string {
	urls := make([]string, 0, len(stored))
	for _, img := range stored {
		urls = append(urls, img.URL)
	}

	return urls
}
