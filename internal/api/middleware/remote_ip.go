package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobledger/records-api/internal/core/service"
)

// RemoteIP copies the client address into the request context so the auth
// gateway can attach it to audit events.
func RemoteIP() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(service.WithRemoteIP(req.Context(), c.RealIP())))
			return next(c)
		}
	}
}
