// Package context carries the request scope from delivery into the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from inbound requests and echoed on every response.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey struct{}

// scope is attached once per request; the logger already carries request_id.
type scope struct {
	requestID string
	logger    *slog.Logger
}

// WithScope attaches the request ID and a logger tagged with it.
func WithScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{
		requestID: requestID,
		logger:    logger.With(slog.String("request_id", requestID)),
	})
}

func scopeFrom(ctx context.Context) *scope {
	s, _ := ctx.Value(scopeKey{}).(*scope)

	return s
}

// RequestIDFrom returns the request ID of ctx, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	if s := scopeFrom(ctx); s != nil {
		return s.requestID
	}

	return ""
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s := scopeFrom(ctx); s != nil {
		return s.logger
	}

	return fallback
}

// RequestID returns the ID of the request being served by c.
func RequestID(c echo.Context) string {
	if id := RequestIDFrom(c.Request().Context()); id != "" {
		return id
	}
	if id := c.Response().Header().Get(HeaderXRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}
