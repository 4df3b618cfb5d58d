// Package graph exposes members and rides as a GraphQL schema.
//
// The SDL lives in schema.graphql and is embedded into the binary.
// Resolvers are thin: every field maps to one service call, and every
// error they return is an *errs.HTTPError whose code and status end up in
// the GraphQL error's "extensions".
package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"
)

// SchemaSDL is the GraphQL schema served by the API.
//
//go:embed schema.graphql
var SchemaSDL string

// NewSchema parses SchemaSDL against resolver. Parsing fails when a field
// has no matching resolver method, so a schema/resolver mismatch stops the
// process at startup.
func NewSchema(resolver *Resolver, maxDepth int, logger *zerolog.Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(
		SchemaSDL,
		resolver,
		graphql.MaxDepth(maxDepth),
		graphql.Logger(&panicLogger{logger: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}

	return schema, nil
}

// panicLogger reports resolver panics through zerolog. The request's
// logger is preferred so the entry carries the request id.
type panicLogger struct {
	logger *zerolog.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = l.logger
	}

	logger.Error().
		Str("panic", fmt.Sprint(value)).
		Msg("graphql resolver panicked")
}
