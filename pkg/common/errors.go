package common

import "net/http"

// APIError is an error carrying an HTTP status code
type APIError struct {
	StatusCode int         `json:"-"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewBadRequestError creates a 400 error
func NewBadRequestError(message string, details interface{}) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message, Details: details}
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: message}
}

// NewConflictError creates a 409 error
func NewConflictError(message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Message: message}
}

// NewForbiddenError creates a 403 error
func NewForbiddenError(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Message: message}
}

// NewInternalServerError creates a 500 error
func NewInternalServerError(message string) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: message}
}
