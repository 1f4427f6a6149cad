// Package dto holds the JSON request and response shapes of the HTTP API
// and the single mapping from errors to error envelopes.
package dto

import "net/http"

// Error codes carried in ErrorDetail.Code.
const (
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)

// ErrorResponse is the envelope of every non-2xx API response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail describes one failure. Details is keyed by request field
// for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorResponse builds an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

// NewErrorResponseWithDetails builds an envelope with field details.
// An empty details map is omitted from the JSON.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	if len(details) == 0 {
		details = nil
	}

	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode returns the status that accompanies code.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeBadRequest, ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
