package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func adminClaims() *service.Claims {
	return &service.Claims{UserID: uuid.New(), Username: "admin", Roles: []string{entity.RoleAdmin.String()}}
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

		err := m.Authenticate(func(echo.Context) error { return nil })(newAuthContext(""))
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(tokens)

		err := m.Authenticate(func(echo.Context) error { return nil })(newAuthContext("Bearer stale"))
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})
}

func TestIdentify(t *testing.T) {
	t.Run("anonymous caller passes without claims", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
		c := newAuthContext("")

		called := false
		require.NoError(t, m.Identify(func(c echo.Context) error {
			called = true
			assert.False(t, HasRole(c, entity.RoleAdmin))

			return nil
		})(c))
		assert.True(t, called)
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(tokens)
		c := newAuthContext("Bearer stale")

		require.NoError(t, m.Identify(func(echo.Context) error { return nil })(c))
		assert.False(t, HasRole(c, entity.RoleAdmin))
	})

	t.Run("valid admin token attaches claims", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("good").Return(adminClaims(), nil)
		m := NewAuthMiddleware(tokens)
		c := newAuthContext("Bearer good")

		require.NoError(t, m.Identify(func(echo.Context) error { return nil })(c))
		assert.True(t, HasRole(c, entity.RoleAdmin))

		_, ok := GetUserID(c)
		assert.True(t, ok)
	})
}
