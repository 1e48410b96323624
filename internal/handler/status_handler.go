package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/portfolio-contact/api/internal/dto"
	"github.com/octobees/portfolio-contact/api/internal/repository"
)

const healthPingTimeout = 2 * time.Second

// StatusHandler answers liveness and readiness probes.
type StatusHandler struct {
	store repository.SubmissionsRepository
}

// NewStatusHandler creates a new handler instance.
func NewStatusHandler(store repository.SubmissionsRepository) *StatusHandler {
	return &StatusHandler{store: store}
}

// Online handles GET / requests.
func (h *StatusHandler) Online(c echo.Context) error {
	return c.String(http.StatusOK, MessageOnline)
}

// Health handles GET /healthz requests.
func (h *StatusHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Store: "unavailable"})
	}
	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Store: "connected"})
}
