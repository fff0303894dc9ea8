package context

import (
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyClaims = "admin_claims"

// SetClaims stores the validated token claims of the calling admin.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(keyClaims, claims)
}

// GetClaims returns the claims stored by the auth middleware.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok && claims != nil
}
