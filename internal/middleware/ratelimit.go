package middleware

import (
	"FinScan/internal/service/ratelimit"
	xhttp "FinScan/pkg/http"
	applogger "FinScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Throttle limits each client address per route with a token bucket.
// A non-positive capacity disables the check.
func Throttle(rl *ratelimit.Limiter, capacity, refillPerSec float64, l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if capacity <= 0 {
			return next
		}
		return func(c echo.Context) error {
			key := c.RealIP() + ":" + c.Path()
			if !rl.Allow(key, capacity, refillPerSec) {
				l.Warn("rate limited",
					applogger.String("remote", c.RealIP()),
					applogger.String("route", c.Path()),
				)
				return xhttp.TooManyRequestsResponse(c)
			}
			return next(c)
		}
	}
}
