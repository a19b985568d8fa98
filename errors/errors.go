package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeConflict indicates the request collides with an existing resource.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeBadRequest indicates malformed or invalid input.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeMethodNotAllowed indicates the resource exists but not for this verb.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeRateLimited indicates the caller exceeded the request budget.
	ErrCodeRateLimited ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL_SERVER_ERROR"
)

// StructuredError provides structured error information: a code for
// programmatic handling, a human-readable message, the underlying cause,
// and optional context for logs.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NotFound reports a lookup of resource by field that matched nothing.
func NotFound(resource, field string, value any) *StructuredError {
	return NewWithContext(ErrCodeNotFound,
		fmt.Sprintf("%s not found with %s : %v", resource, field, value),
		map[string]any{"resource": resource, "field": field, "value": value})
}

// AlreadyExists reports a create whose unique field collides with a stored resource.
func AlreadyExists(resource, field string, value any) *StructuredError {
	return NewWithContext(ErrCodeConflict,
		fmt.Sprintf("%s already exists with %s: %v", strings.ToUpper(resource), field, value),
		map[string]any{"resource": resource, "field": field, "value": value})
}

// InvalidParam reports a parameter whose value cannot be interpreted.
func InvalidParam(param, value string) *StructuredError {
	return NewWithContext(ErrCodeBadRequest,
		fmt.Sprintf("'%s' is not a valid %s", value, param),
		map[string]any{"param": param, "value": value})
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
