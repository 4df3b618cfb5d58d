package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/ridelog/internal/middleware"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	CheckDatabase = "database"
	CheckRedis    = "redis"
)

// healthCheck is a single dependency probe. A failing critical check turns
// the whole response into 503; a failing non-critical one is only reported.
type healthCheck struct {
	name     string
	critical bool
	probe    func(ctx context.Context) error
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks  []healthCheck
	timeout time.Duration
}

// NewHealthHandler builds the probes selected by
// observability.health_checks. With health checks disabled, /status only
// reports liveness.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}

	cfg := s.Config.Observability
	if cfg == nil || !cfg.HealthChecks.Enabled {
		return h
	}
	h.timeout = cfg.HealthChecks.Timeout

	if cfg.HealthChecks.HasCheck(CheckDatabase) && s.DB != nil {
		h.checks = append(h.checks, healthCheck{
			name:     CheckDatabase,
			critical: true,
			probe:    s.DB.Pool.Ping,
		})
	}

	// Redis only carries welcome emails, the API keeps working without it.
	if cfg.HealthChecks.HasCheck(CheckRedis) && s.Redis != nil {
		h.checks = append(h.checks, healthCheck{
			name: CheckRedis,
			probe: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return h
}

// CheckHealth returns the service status and one entry per dependency check.
//
// It returns 200 when every critical check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	for _, check := range h.checks {
		checkStart := time.Now()
		err := h.runCheck(c.Request().Context(), check)
		elapsed := time.Since(checkStart)

		if err != nil {
			checks[check.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if check.critical {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Bool("critical", check.critical).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordHealthCheckError(map[string]interface{}{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}

		logger.Debug().
			Str("check", check.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) runCheck(ctx context.Context, check healthCheck) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	return check.probe(ctx)
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
