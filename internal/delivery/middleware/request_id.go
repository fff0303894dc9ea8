// Package middleware holds echo middleware shared by every server.
package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRequestID reuses the caller's X-Request-Id or mints a UUID, echoes it back and
// hands the use cases a logger tagged with it.
func NewRequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		TargetHeader: deliverycontext.HeaderXRequestID,
		Generator:    uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			deliverycontext.Bind(c, requestID, logger)
		},
	})
}
