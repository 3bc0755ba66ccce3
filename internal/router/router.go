// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/gameshelf/backend/internal/handler"
	"github.com/gameshelf/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack and all
// route registrations.
//
// Middleware order matters:
//   - RequestID first, so every later layer can correlate
//   - the New Relic transaction middleware before ContextEnhancer, so
//     the request logger can pick up trace metadata
//   - Recover inside the logging layers, so panics still produce a
//     request log line
//   - the rate limiter last, so rejected requests are logged and traced
func New(h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(mw.Tracing.NewRelicMiddleware())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Tracing.EnhanceTracing())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.CORS())
	r.Use(mw.Global.Secure())
	r.Use(mw.Global.Recover())
	r.Use(mw.RateLimit.Limit())

	registerAPIRoutes(r, h)
	registerSystemRoutes(r, h)

	return r
}
