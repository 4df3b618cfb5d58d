package router

import (
	"github.com/deppfellow/ridelog/internal/handler"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// GraphQL API: health, GraphiQL and the schema SDL.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET(s.Config.GraphQL.Endpoint+"/schema", h.Docs.ServeSchema)

	if !s.Config.GraphQL.DisableGraphiQL {
		r.GET(s.Config.GraphQL.GraphiQLEndpoint, h.Docs.ServeGraphiQL)
	}
}
