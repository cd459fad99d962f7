package server

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrNilCatalog is returned by New when no catalog is supplied.
var ErrNilCatalog = errors.New("server: catalog cannot be nil")

// HTTPError is an error with everything needed to render a JSON error body.
type HTTPError struct {
	// Err is the underlying error, logged but never sent to clients.
	Err error

	// Message is the user-facing message.
	Message string

	// ErrorCode is a stable machine-readable identifier.
	ErrorCode string

	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, errorCode, message string) *HTTPError {
	return &HTTPError{Code: code, ErrorCode: errorCode, Message: message}
}

// WithErr returns a copy of e wrapping err.
func (e *HTTPError) WithErr(err error) *HTTPError {
	cp := *e
	cp.Err = err
	return &cp
}

var (
	ErrNotFound         = NewHTTPError(http.StatusNotFound, "not_found", "Resource not found")
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	ErrUnknownRule      = NewHTTPError(http.StatusNotFound, "unknown_rule", "Unknown validation rule")
	ErrBadRequest       = NewHTTPError(http.StatusBadRequest, "bad_request", "Bad request")
	ErrMissingArgument  = NewHTTPError(http.StatusUnprocessableEntity, "missing_argument", "Not enough arguments for message template")
	ErrInternal         = NewHTTPError(http.StatusInternalServerError, "internal", "Internal server error")
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError renders err as JSON. Errors that are not an *HTTPError become 500s.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = ErrInternal.WithErr(err)
	}

	writeJSON(w, httpErr.Code, errorResponse{
		Error:     httpErr.Message,
		Code:      httpErr.ErrorCode,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
