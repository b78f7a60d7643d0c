package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied indicates access permission issues
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError reports a path that does not exist or cannot be read.
// It unwraps to ErrNotFound so callers can classify it with errors.Is.
type NotFoundError struct {
	Path    string
	Wrapped error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Wrapped
}

// Is makes errors.Is(err, ErrNotFound) match regardless of the wrapped cause
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(path string, wrapped error) *NotFoundError {
	return &NotFoundError{
		Path:    path,
		Wrapped: wrapped,
	}
}

// IOError represents a failed read or write against a path
type IOError struct {
	Op      string
	Path    string
	Wrapped error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o failure during %s on '%s': %v", e.Op, e.Path, e.Wrapped)
}

func (e *IOError) Unwrap() error {
	return e.Wrapped
}

// NewIOError creates a new I/O error
func NewIOError(op, path string, wrapped error) *IOError {
	return &IOError{
		Op:      op,
		Path:    path,
		Wrapped: wrapped,
	}
}
