package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status and code to render.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose envelope code equals its status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Code:       status,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// String is used by the logger.
func (e *HTTPError) String() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
