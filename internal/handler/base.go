package handler

import (
	"reflect"
	"time"

	"github.com/deppfellow/ridelog/internal/middleware"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/deppfellow/ridelog/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (GraphQLHandler, HealthHandler, ...)
// so they can reach config, logger, db and redis via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that receives a
// validated request payload and returns a response or an error.
//
// Req is a pointer type, e.g. *validation.GraphQLRequest, because Echo's
// Bind populates it in place.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful result is written to the HTTP
// response and which observability attributes go with it.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on the result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// newRequest allocates a zero value of the type prototype points to, so
// concurrent requests never bind into the same struct.
func newRequest[Req validation.Validatable](prototype Req) Req {
	t := reflect.TypeOf(prototype)
	if t == nil || t.Kind() != reflect.Pointer {
		return prototype
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// requestTrace records the phases of one pipeline run on the request
// logger and, when present, on the New Relic transaction. Errors are not
// noticed here; EnhanceTracing does that once per request.
type requestTrace struct {
	logger zerolog.Logger
	txn    *newrelic.Transaction
	start  time.Time
}

func (t *requestTrace) phase(name string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}

	if t.txn != nil {
		t.txn.AddAttribute(name+".status", status)
		t.txn.AddAttribute(name+".duration_ms", elapsed.Milliseconds())
	}

	event := t.logger.Debug()
	if err != nil {
		event = t.logger.Warn().Err(err)
	}
	event.
		Dur(name+"_duration", elapsed).
		Dur("total_duration", time.Since(t.start)).
		Msgf("%s %s", name, status)
}

// handleRequest is the shared execution pipeline for all typed handlers:
// bind and validate req, run handler, then write the result through
// responseHandler. Each phase is timed and traced.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	route := c.Path()

	trace := &requestTrace{
		logger: middleware.GetLogger(c).With().
			Str("operation", responseHandler.GetOperation()).
			Str("route", route).
			Logger(),
		txn:   newrelic.FromContext(c.Request().Context()),
		start: time.Now(),
	}

	if trace.txn != nil {
		trace.txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(trace.txn, nil)
	}

	phaseStart := time.Now()
	err := validation.BindAndValidate(c, req)
	trace.phase("validation", time.Since(phaseStart), err)
	if err != nil {
		return err
	}

	phaseStart = time.Now()
	result, err := handler(c, req)
	trace.phase("handler", time.Since(phaseStart), err)
	if err != nil {
		return err
	}

	if trace.txn != nil {
		trace.txn.AddAttribute("total.duration_ms", time.Since(trace.start).Milliseconds())
		responseHandler.AddAttributes(trace.txn, result)
	}

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error handling, logging,
// metrics and tracing, and returns a route-ready echo.HandlerFunc.
//
// req only tells Handle which type to bind into; every call binds into a
// freshly allocated value:
//
//	e.POST("/graphql", handler.Handle(h, h.Execute, http.StatusOK, &validation.GraphQLRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
