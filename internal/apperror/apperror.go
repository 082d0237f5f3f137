// Package apperror defines the domain errors returned by services and rendered
// by the error-handling middleware.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error carrying the HTTP status it maps to.
type Error struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports a missing record of the given entity.
func NotFound(entity string) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

// BadRequest reports an invalid request payload or parameter.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Validation wraps per-field validation failures.
func Validation(fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFound domain error.
func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == http.StatusNotFound
}

// Internal is the response rendered for unclassified failures. The cause is
// logged, never returned to the client.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error"}
}
