package router

import (
	"net/http"

	"github.com/deppfellow/ridelog/internal/handler"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/deppfellow/ridelog/internal/validation"
	"github.com/labstack/echo/v4"
)

// registerGraphQLRoutes mounts the GraphQL endpoint. GET is accepted for
// queries sent as URL parameters; mutations are expected over POST.
func registerGraphQLRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers, limiter echo.MiddlewareFunc) {
	execute := handler.Handle(h.GraphQL.Handler, h.GraphQL.Execute, http.StatusOK, &validation.GraphQLRequest{})

	r.POST(s.Config.GraphQL.Endpoint, execute, limiter)
	r.GET(s.Config.GraphQL.Endpoint, execute, limiter)
}
