// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps the GraphQL and system
// paths to their handlers
package router

import (
	"math"
	"time"

	"github.com/deppfellow/ridelog/internal/errs"
	"github.com/deppfellow/ridelog/internal/handler"
	"github.com/deppfellow/ridelog/internal/middleware"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimiterExpiry is how long an idle client's limiter is remembered.
const rateLimiterExpiry = 3 * time.Minute

// NewRouter builds the Echo instance with the global middleware chain and
// every route registered.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerGraphQLRoutes(router, s, h, rateLimiter(s, middlewares.RateLimit))

	return router
}

// rateLimiter enforces server.rate_limit requests per second per client IP
// on the GraphQL endpoint.
func rateLimiter(s *server.Server, recorder *middleware.RateLimitMiddleware) echo.MiddlewareFunc {
	limit := s.Config.Server.RateLimit
	retryAfter := int(math.Ceil(1 / limit))

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(
			echoMiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(limit),
				Burst:     int(math.Ceil(limit)),
				ExpiresIn: rateLimiterExpiry,
			},
		),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			recorder.RecordRateLimitHit(c.Path())

			s.Logger.Warn().
				Str("request_id", middleware.GetRequestID(c)).
				Str("identifier", identifier).
				Str("path", c.Path()).
				Str("method", c.Request().Method).
				Str("ip", c.RealIP()).
				Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError(retryAfter)
		},
	})
}
