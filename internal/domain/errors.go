// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped in a ValidationError carrying the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyDescription is returned when a task description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of the known values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidID is returned when a task ID is malformed or zero.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes a field that failed validation.
// It always matches ErrValidation via errors.Is, in addition to its wrapped cause.
type ValidationError struct {
	Field   string // The field that failed validation (e.g., "title")
	Message string // Human-readable description of the failure
	Err     error  // Specific cause, such as ErrEmptyTitle
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Message)
}

// Unwrap returns both the specific cause and ErrValidation so that
// errors.Is works for either.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrValidation {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is, or wraps, a validation failure.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) || errors.Is(err, ErrValidation)
}
