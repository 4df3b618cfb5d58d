package handler

import (
	"net/http"

	"github.com/deppfellow/ridelog/internal/errs"
	"github.com/deppfellow/ridelog/internal/middleware"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/deppfellow/ridelog/internal/validation"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// CodeMutationOverGET is returned when a mutation arrives in a GET request.
const CodeMutationOverGET = "MUTATION_REQUIRES_POST"

// GraphQLHandler executes GraphQL operations against the member/ride schema.
type GraphQLHandler struct {
	Handler
	schema *graphql.Schema
}

func NewGraphQLHandler(s *server.Server, schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		Handler: NewHandler(s),
		schema:  schema,
	}
}

// Execute runs one operation. Resolver failures are part of the GraphQL
// response body, so the HTTP status stays 200 once the request is valid.
func (h *GraphQLHandler) Execute(c echo.Context, req *validation.GraphQLRequest) (*graphql.Response, error) {
	ctx := c.Request().Context()

	if c.Request().Method == http.MethodGet && isMutation(req.Query, req.OperationName) {
		code := CodeMutationOverGET
		return nil, errs.NewBadRequestError("Mutations must be sent with POST", false, &code, nil, nil)
	}

	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	if txn := newrelic.FromContext(ctx); txn != nil {
		if req.OperationName != "" {
			txn.AddAttribute("graphql.operation_name", req.OperationName)
		}
		txn.AddAttribute("graphql.error_count", len(resp.Errors))
	}

	if len(resp.Errors) > 0 {
		middleware.GetLogger(c).Debug().
			Str("operation_name", req.OperationName).
			Int("error_count", len(resp.Errors)).
			Str("first_error", resp.Errors[0].Message).
			Msg("graphql operation returned errors")
	}

	return resp, nil
}

// isMutation reports whether the operation selected by operationName is a
// mutation. Unparseable documents report false; the executor returns the
// syntax error to the client.
func isMutation(query, operationName string) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return false
	}

	op := doc.Operations.ForName(operationName)
	return op != nil && op.Operation == ast.Mutation
}
