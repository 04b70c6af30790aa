package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/api/metrics"
)

// AttemptLimiter counts attempts per key within a window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// LoginRateLimit rejects requests from a client IP that exhausted its login
// attempts with 429 and a Retry-After header. A nil limiter disables the
// check; limiter errors let the request through.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}

			allowed, retry, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("login limiter unavailable")
				return next(c)
			}
			if !allowed {
				secs := int(math.Ceil(retry.Seconds()))
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
				log.Warn().Str("ip", ip).Int("retry_after", secs).Msg("login rate limited")
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts")
			}
			return next(c)
		}
	}
}
