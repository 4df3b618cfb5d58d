package validation

import (
	"encoding/json"
	"strings"
)

// GraphQLRequest is the body of a GraphQL-over-HTTP request.
//
// POST requests carry it as JSON. GET requests carry query, operationName
// and variables as URL query parameters, where variables is a JSON-encoded
// object.
type GraphQLRequest struct {
	Query         string                 `json:"query" query:"query" validate:"required"`
	OperationName string                 `json:"operationName" query:"operationName"`
	Variables     map[string]interface{} `json:"variables"`

	// RawVariables is only populated from the URL on GET requests.
	RawVariables string `json:"-" query:"variables"`
}

// Validate checks the request and decodes RawVariables into Variables.
func (r *GraphQLRequest) Validate() error {
	if err := Validator().Struct(r); err != nil {
		return err
	}

	if raw := strings.TrimSpace(r.RawVariables); raw != "" && r.Variables == nil {
		var vars map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &vars); err != nil {
			return CustomValidationErrors{{
				Field:   "variables",
				Message: "must be a JSON object",
			}}
		}
		r.Variables = vars
	}

	return nil
}
