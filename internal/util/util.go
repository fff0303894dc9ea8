// Package util holds small formatting helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Digest consumes r and reports its size and SHA256, so an import can be traced to its source file.
func Digest(r io.Reader) (size int64, sum string, err error) {
	h := sha256.New()

	size, err = io.Copy(h, r)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to hash input")
	}

	return size, hex.EncodeToString(h.Sum(nil)), nil
}

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	value, suffix := float64(n)/unit, 0
	for value >= unit && suffix < len("KMGTPE")-1 {
		value /= unit
		suffix++
	}

	return fmt.Sprintf("%.1f %cB", value, "KMGTPE"[suffix])
}

// FormatDuration renders an elapsed time rounded to the nearest millisecond below one second
// and to the nearest second above.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}

	return d.Round(time.Second).String()
}
