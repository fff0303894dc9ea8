package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}

		claims, err := m.parseBearer(authHeader)
		if err != nil {
			return err
		}
		bindClaims(c, claims)

		return next(c)
	}
}

// Identify is Authenticate for public routes: a valid token attaches its claims,
// anything else lets the request through anonymously.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			if claims, err := m.parseBearer(authHeader); err == nil {
				bindClaims(c, claims)
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) parseBearer(authHeader string) (*service.Claims, error) {
	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "authorization header is not a bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	return claims, nil
}

func bindClaims(c echo.Context, claims *service.Claims) {
	deliverycontext.SetClaims(c, claims)

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default())
	ctx = deliverycontext.WithLogger(ctx, logger.With("admin_id", claims.UserID.String()))
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequireRole rejects callers whose token lacks role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "role check without authentication")
			}

			if !slices.Contains(claims.Roles, role.String()) {
				return errors.Wrapf(domainerrors.ErrForbidden, "role %q required", role)
			}

			return next(c)
		}
	}
}

// GetUserID returns the id of the authenticated admin.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// HasRole reports whether the caller presented a valid token carrying role.
func HasRole(c echo.Context, role entity.Role) bool {
	claims, ok := deliverycontext.GetClaims(c)

	return ok && slices.Contains(claims.Roles, role.String())
}
