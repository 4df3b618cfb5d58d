package handler

import (
	"fmt"

	"github.com/deppfellow/ridelog/internal/graph"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/deppfellow/ridelog/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	GraphQL *GraphQLHandler
	Docs    *DocsHandler
}

// NewHandlers builds the GraphQL schema on top of services and constructs
// every handler. It fails when the schema does not match the resolvers.
func NewHandlers(s *server.Server, services *service.Services) (*Handlers, error) {
	resolver := graph.NewResolver(services.Member, services.Ride)

	schema, err := graph.NewSchema(resolver, s.Config.GraphQL.MaxDepth, s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql handler: %w", err)
	}

	return &Handlers{
		Health:  NewHealthHandler(s),
		GraphQL: NewGraphQLHandler(s, schema),
		Docs:    NewDocsHandler(s),
	}, nil
}
