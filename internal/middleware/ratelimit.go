package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/portfolio-contact/api/internal/config"
)

// ContactPath is the route guarded by ContactRateLimiter.
const ContactPath = "/enviar-mensagem"

// RateLimitedMessage is returned once the bucket is empty.
const RateLimitedMessage = "Muitas requisições. Tente novamente mais tarde."

// ContactRateLimiter applies a shared token bucket to the contact submission route.
// A zero config disables it.
func ContactRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
	var mu sync.Mutex

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() != ContactPath {
				return next(c)
			}

			mu.Lock()
			allowed := limiter.Allow()
			mu.Unlock()

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"message": RateLimitedMessage})
			}

			return next(c)
		}
	}
}
