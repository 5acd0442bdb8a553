package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jobledger/records-api/internal/core/domain"
)

// ctxIdentity returns the identity stored by the Auth middleware. A missing
// identity means the route was mounted without the middleware; treat it as
// unauthenticated.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil || identity.Identifier == "" {
		return nil, domain.ErrAuthenticationFailed
	}
	return identity, nil
}
