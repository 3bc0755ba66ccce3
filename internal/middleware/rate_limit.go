package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gameshelf/backend/internal/errs"
	"github.com/gameshelf/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware enforces a per-client-IP request budget using a
// Redis fixed window.
//
// The limiter fails open: when Redis is not configured or a command
// errors, the request is allowed. Availability of the API is worth more
// than exactness of the limit.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the enforcement middleware. A no-op passthrough is
// returned when rate limiting is disabled or Redis is absent.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimitPerMinute
	if limit <= 0 || r.server.Redis == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			// Fixed one-minute window per client IP.
			window := time.Now().Unix() / 60
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), window)

			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if count == 1 {
				// First hit in the window owns the expiry.
				r.server.Redis.Expire(ctx, key, time.Minute)
			}

			if count > int64(limit) {
				r.RecordRateLimitHit(c.Path())
				return &errs.HTTPError{
					Code:    "RATE_LIMIT_EXCEEDED",
					Message: "Too many requests",
					Status:  http.StatusTooManyRequests,
				}
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit records a New Relic custom event for a rejected
// request, when the agent is enabled.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
