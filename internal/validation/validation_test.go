package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/ridelog/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func postJSON(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return newContext(req)
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_PostJSON(t *testing.T) {
	c := postJSON(`{"query":"query Q($id: String!) { member(id: $id) { email } }","operationName":"Q","variables":{"id":"abc"}}`)

	req := &GraphQLRequest{}
	require.NoError(t, BindAndValidate(c, req))

	assert.Contains(t, req.Query, "member(id: $id)")
	assert.Equal(t, "Q", req.OperationName)
	assert.Equal(t, map[string]interface{}{"id": "abc"}, req.Variables)
}

func TestBindAndValidate_GetQueryParams(t *testing.T) {
	params := url.Values{}
	params.Set("query", "{ members { id } }")
	params.Set("variables", `{"limit":2}`)

	c := newContext(httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil))

	req := &GraphQLRequest{}
	require.NoError(t, BindAndValidate(c, req))

	assert.Equal(t, "{ members { id } }", req.Query)
	assert.Equal(t, map[string]interface{}{"limit": float64(2)}, req.Variables)
}

func TestBindAndValidate_MissingQuery(t *testing.T) {
	err := BindAndValidate(postJSON(`{"operationName":"Q"}`), &GraphQLRequest{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.True(t, httpErr.Override)
	assert.Equal(t, []errs.FieldError{{Field: "query", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	err := BindAndValidate(postJSON(`{"query":`), &GraphQLRequest{})

	httpErr := requireBadRequest(t, err)
	assert.NotEmpty(t, httpErr.Message)
	assert.False(t, httpErr.Override)
}

func TestBindAndValidate_BadVariablesParam(t *testing.T) {
	params := url.Values{}
	params.Set("query", "{ members { id } }")
	params.Set("variables", "not json")

	c := newContext(httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil))

	httpErr := requireBadRequest(t, BindAndValidate(c, &GraphQLRequest{}))
	assert.Equal(t, []errs.FieldError{{Field: "variables", Error: "must be a JSON object"}}, httpErr.Errors)
}

func TestBindErrorMessage(t *testing.T) {
	assert.Equal(t, "bad things", bindErrorMessage(echo.NewHTTPError(http.StatusBadRequest, "bad things")))
	assert.Equal(t, "Unsupported Media Type", bindErrorMessage(&echo.HTTPError{Code: http.StatusUnsupportedMediaType}))
	assert.Equal(t, "Invalid request body", bindErrorMessage(errors.New("boom")))
}

type emptyCheckRequest struct {
	Name string `json:"name"`
}

func (r *emptyCheckRequest) Validate() error {
	if r.Name == "" {
		return errors.New("request is empty")
	}
	return nil
}

func TestExtractValidationError_PlainError(t *testing.T) {
	assert.Nil(t, extractValidationError(errors.New("request is empty")))
}

func TestBindAndValidate_RequestLevelFailure(t *testing.T) {
	err := BindAndValidate(postJSON(`{}`), &emptyCheckRequest{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Equal(t, "Validation failed: request is empty", httpErr.Message)
	assert.False(t, httpErr.Override)
	assert.Empty(t, httpErr.Errors)
}
