package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/chembond-tutor/internal/app"
	"github.com/jsamuelsen/chembond-tutor/internal/domain"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
)

const (
	// contextKeyTraceID is the gin context key checked first for a trace ID.
	contextKeyTraceID = "trace_id"

	// headerRequestID and contextKeyRequestID are the fallback identifiers.
	headerRequestID     = "X-Request-ID"
	contextKeyRequestID = "request_id"

	messageInternal    = "an internal error occurred"
	messageUnavailable = "service temporarily unavailable"
	messageBadRequest  = "request body is not valid JSON"
	messageValidation  = "request validation failed"
	messageTimeout     = "request timed out"
)

// MapError maps an error to an HTTP status and error envelope.
// Unknown errors map to 500 with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	resp := envelopeFor(err)
	return HTTPStatusFromCode(resp.Error.Code), resp
}

func envelopeFor(err error) *ErrorResponse {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, ErrBinding):
		return NewErrorResponse(ErrorCodeBadRequest, messageBadRequest)

	case errors.Is(err, ErrValidation):
		return NewErrorResponseWithDetails(ErrorCodeValidation, messageValidation, ValidationErrors(err))

	case errors.As(err, &validationErr):
		var details map[string]string
		if validationErr.Field != "" {
			details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return NewErrorResponseWithDetails(ErrorCodeValidation, validationErr.Error(), details)

	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsUnavailable(err):
		return NewErrorResponse(ErrorCodeUnavailable, messageUnavailable)

	case errors.Is(err, context.DeadlineExceeded):
		return NewErrorResponse(ErrorCodeTimeout, messageTimeout)

	default:
		return NewErrorResponse(ErrorCodeInternal, messageInternal)
	}
}

// HandleError writes the error envelope for err. Server-side failures are
// logged with the request-scoped logger, along with the failing operation
// step when known; their details never reach the client.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		attrs := []any{
			slog.Int("status", status),
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		}
		if step, ok := app.GetExecutionStep(err); ok {
			attrs = append(attrs, slog.String("step", string(step)))
		}

		ctx := c.Request.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "request failed", attrs...)
	}

	c.AbortWithStatusJSON(status, resp)
}

// GetTraceID returns the identifier to echo in error envelopes: an explicit
// trace_id on the gin context, the X-Request-ID header, the OpenTelemetry
// trace ID, and finally the generated request ID.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(contextKeyTraceID); ok {
		s, _ := v.(string)
		return s
	}

	if id := c.GetHeader(headerRequestID); id != "" {
		return id
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return c.GetString(contextKeyRequestID)
}
