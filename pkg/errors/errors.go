package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the public error code.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose public code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewBadRequestError wraps a validation failure as a 400.
func NewBadRequestError(format string, args ...any) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// NewNotFoundError returns a 404 with the given message.
func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// AsHTTPError unwraps err into an *HTTPError when it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
