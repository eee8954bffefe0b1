package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/ratelimit"
)

// RateLimit guards the API surface with the fixed-window limiter keyed by
// client address. Requests without a determinable address are rejected
// outright rather than silently allowed.
func RateLimit(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: apperrors.ErrUnknownIP.Error()})
			}
			if err := limiter.Consume(ip); err != nil {
				if errors.Is(err, ratelimit.ErrLimitExceeded) {
					log.Printf("rate limit exceeded for IP: %s", ip)
					return c.JSON(http.StatusTooManyRequests, apperrors.ErrorResponse{Error: apperrors.ErrTooManyRequests.Error()})
				}
				return err
			}
			return next(c)
		}
	}
}
