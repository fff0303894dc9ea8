package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/internal/util"

	"github.com/pkg/errors"
)

func handleImport(ctx context.Context, deps seedDeps, path string) error {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	size, sum, err := util.Digest(bytes.NewReader(data))
	if err != nil {
		return err
	}
	deps.Logger.Info("Importing legacy store",
		slog.String("file", path),
		slog.String("size", util.FormatBytes(size)),
		slog.String("sha256", sum),
	)

	summary, err := deps.ImportUC.ImportLegacy(ctx, bytes.NewReader(data))
	if err != nil {
		return err
	}

	deps.Logger.Info("Legacy store imported",
		slog.Int("products", summary.Products),
		slog.Int("services", summary.Services),
		slog.Int("tickets", summary.Tickets),
		slog.Int("blogs", summary.Blogs),
		slog.Bool("settings", summary.Settings),
		slog.Int("skipped", summary.Skipped),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)

	return nil
}
