package handler

import (
	"net/http"

	"dietplan/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports that the server is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
