package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind represents the closed set of failure classes the API can report
type ErrorKind string

const (
	KindValidation             ErrorKind = "validation"
	KindTranscription          ErrorKind = "transcription"
	KindStructuringUnavailable ErrorKind = "structuring_unavailable"
	KindStructuringService     ErrorKind = "structuring_service"
	KindInternal               ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for the error kind.
// Status mapping happens only here, at the boundary.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindStructuringUnavailable:
		return http.StatusServiceUnavailable
	case KindTranscription, KindStructuringService:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a client-fault error for a rejected upload
func NewValidationError(message string, details map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}

// NewTranscriptionError creates an error for a recognizer failure
func NewTranscriptionError(message string) *APIError {
	return &APIError{
		Kind:    KindTranscription,
		Message: message,
	}
}

// NewStructuringUnavailableError creates an error for an unreachable
// structuring service (connection refused, timeout)
func NewStructuringUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindStructuringUnavailable,
		Message: message,
	}
}

// NewStructuringServiceError creates an error for a structuring service
// that was reachable but answered with a failure status
func NewStructuringServiceError(message string) *APIError {
	return &APIError{
		Kind:    KindStructuringService,
		Message: message,
	}
}

// NewInternalError creates a catch-all internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// Wrap turns any error into an APIError, preserving an existing kind
func Wrap(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Kind:    KindInternal,
		Message: fmt.Sprintf("%v", err),
	}
}
