// Package middleware holds the echo middleware shared by the API and worker servers.
package middleware

import (
	"log/slog"

	deliverycontext "dietplan/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScope tags every request with an ID, taken from X-Request-Id when the
// client sends one, and stores a logger carrying it in the request context.
func RequestScope(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			c.SetRequest(req.WithContext(deliverycontext.WithScope(req.Context(), requestID, logger)))

			return next(c)
		}
	}
}
