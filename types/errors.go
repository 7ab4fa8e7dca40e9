package types

import (
	"errors"
	"fmt"
)

// Standard error types
type ErrorType string

const (
	ErrTypeConfig       ErrorType = "CONFIG_ERROR"
	ErrTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrTypeInvalidValue ErrorType = "INVALID_VALUE"
	ErrTypeDatabase     ErrorType = "DATABASE_ERROR"
	ErrTypeInternal     ErrorType = "INTERNAL_ERROR"
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeRateLimit    ErrorType = "RATE_LIMIT"
)

// StandardError provides consistent error formatting
type StandardError struct {
	Type    ErrorType
	Message string
	Details map[string]any
	Cause   error
}

func (e *StandardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// IsErrorType reports whether err wraps a StandardError of type t.
func IsErrorType(err error, t ErrorType) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}

// Error constructors for common cases

func NewConfigError(msg string, cause error) error {
	return &StandardError{
		Type:    ErrTypeConfig,
		Message: msg,
		Cause:   cause,
	}
}

func NewValidationError(field, msg string) error {
	return &StandardError{
		Type:    ErrTypeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, msg),
		Details: map[string]any{"field": field},
	}
}

func NewInvalidValueError(field, value, msg string) error {
	return &StandardError{
		Type:    ErrTypeInvalidValue,
		Message: fmt.Sprintf("invalid value for %s: %s (%s)", field, value, msg),
		Details: map[string]any{"field": field, "value": value},
	}
}

func NewDatabaseError(operation string, cause error) error {
	return &StandardError{
		Type:    ErrTypeDatabase,
		Message: fmt.Sprintf("database %s failed", operation),
		Cause:   cause,
	}
}

func NewNotFoundError(resource string) error {
	return &StandardError{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Details: map[string]any{"resource": resource},
	}
}

func NewRateLimitError(client string) error {
	return &StandardError{
		Type:    ErrTypeRateLimit,
		Message: fmt.Sprintf("rate limit exceeded for client: %s", client),
		Details: map[string]any{"client": client},
	}
}

func NewInternalError(msg string, cause error) error {
	return &StandardError{
		Type:    ErrTypeInternal,
		Message: msg,
		Cause:   cause,
	}
}
