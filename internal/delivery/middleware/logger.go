package middleware

import (
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are polled by load balancers and never logged.
var quietPaths = map[string]bool{"/health": true}

// NewAccessLog writes one line per request once the error handler has produced the
// final status. Debug mode adds the user agent and query string.
func NewAccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	verbose := cfg.Env.Debug

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if quietPaths[req.URL.Path] {
				return next(c)
			}

			began := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			attrs := []slog.Attr{
				slog.String("request_id", deliverycontext.RequestID(c)),
				slog.String("method", req.Method),
				slog.String("uri", req.URL.Path),
				slog.Int("status", res.Status),
				slog.Int64("bytes_out", res.Size),
				slog.Duration("latency", time.Since(began)),
				slog.String("remote_ip", c.RealIP()),
			}
			if verbose {
				attrs = append(attrs, slog.String("user_agent", req.UserAgent()))
				if req.URL.RawQuery != "" {
					attrs = append(attrs, slog.String("query", req.URL.RawQuery))
				}
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			logger.LogAttrs(req.Context(), statusLevel(res.Status), "http request", attrs...)

			return nil
		}
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
