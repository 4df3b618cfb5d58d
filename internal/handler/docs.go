package handler

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/deppfellow/ridelog/internal/graph"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/labstack/echo/v4"
)

// GraphiQLTitle is the page title of the in-browser IDE.
const GraphiQLTitle = "Ridelog GraphiQL"

// DocsHandler serves the developer-facing pages: GraphiQL and the raw SDL.
type DocsHandler struct {
	Handler
	graphiql echo.HandlerFunc
}

func NewDocsHandler(s *server.Server) *DocsHandler {
	return &DocsHandler{
		Handler:  NewHandler(s),
		graphiql: echo.WrapHandler(playground.Handler(GraphiQLTitle, s.Config.GraphQL.Endpoint)),
	}
}

// ServeGraphiQL renders the GraphiQL page pointed at the GraphQL endpoint.
func (h *DocsHandler) ServeGraphiQL(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return h.graphiql(c)
}

// ServeSchema returns the schema in SDL form.
func (h *DocsHandler) ServeSchema(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.String(http.StatusOK, graph.SchemaSDL)
}
