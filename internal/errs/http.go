package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "query", "error": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "query").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRetry tells the client the request may succeed if repeated
	// later. Value holds the suggested delay in seconds.
	ActionTypeRetry ActionType = "retry"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the application error type.
//
// It is serialized directly into the JSON error envelope and, through
// Extensions, into GraphQL errors.
// Fields:
//   - Code: machine-friendly error code (e.g. "MEMBER_NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the error handler replace the message in production.
//   - Errors: list of per-field errors (validation).
//   - Action: client instruction (optional).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`

	Action *Action `json:"action"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Extensions exposes the error's machine-readable parts in the
// "extensions" member of a GraphQL error.
func (e *HTTPError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":   e.Code,
		"status": e.Status,
	}
	if len(e.Errors) > 0 {
		ext["fields"] = e.Errors
	}
	if e.Action != nil {
		ext["action"] = e.Action
	}
	return ext
}

// Is reports whether target is an *HTTPError. Code and Status are not
// compared, so errors.Is(err, &HTTPError{}) answers "is this an
// application error at all".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text
// and entity names.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
