package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/task-registry/internal/domain"
)

// ErrNilDependency is returned by constructors when a required dependency is missing.
var ErrNilDependency = errors.New("required dependency is nil")

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "update_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Validation errors are returned unchanged so callers can inspect the field.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
