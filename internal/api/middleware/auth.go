package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobledger/records-api/internal/core/domain"
	"github.com/jobledger/records-api/internal/core/ports"
)

// Auth resolves the bearer token through the auth gateway and stores the
// identity under the "identity" context key. Every failure is reported as
// domain.ErrAuthenticationFailed.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrAuthenticationFailed
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return domain.ErrAuthenticationFailed
			}

			identity, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return err
			}

			c.Set("identity", identity)
			return next(c)
		}
	}
}
