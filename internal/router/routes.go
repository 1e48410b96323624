package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/portfolio-contact/api/internal/config"
	"github.com/octobees/portfolio-contact/api/internal/handler"
	middlewarepkg "github.com/octobees/portfolio-contact/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Contact *handler.ContactHandler
	Status  *handler.StatusHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", handlers.Status.Online)
	e.GET("/healthz", handlers.Status.Health)

	e.POST(middlewarepkg.ContactPath, handlers.Contact.Submit, middlewarepkg.ContactRateLimiter(cfg.RateLimitContact))
}
