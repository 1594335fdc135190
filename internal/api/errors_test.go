package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/task-registry/internal/api/shared"
	"github.com/phrazzld/task-registry/internal/domain"
	"github.com/phrazzld/task-registry/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "task not found", err: store.ErrTaskNotFound, expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrTaskNotFound), expected: http.StatusNotFound},
		{
			name:     "domain validation",
			err:      domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle),
			expected: http.StatusBadRequest,
		},
		{name: "bare ErrValidation", err: domain.ErrValidation, expected: http.StatusBadRequest},
		{name: "request validation", err: validateErr(t), expected: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
	assert.Equal(t, "Invalid title: cannot be empty",
		GetSafeErrorMessage(domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle)))
	assert.Equal(t, "Invalid request: body is empty",
		GetSafeErrorMessage(domain.NewValidationError("", "body is empty", nil)))
	assert.Equal(t, "Invalid due_date: validation failed", GetSafeErrorMessage(validateErr(t)))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("secret detail")))
}

func TestSanitizeValidationError(t *testing.T) {
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("not a validator error")))
	assert.Equal(t, "Invalid due_date: validation failed", SanitizeValidationError(validateErr(t)))
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "due_date", toSnakeCase("DueDate"))
	assert.Equal(t, "title", toSnakeCase("Title"))
	assert.Equal(t, "id", toSnakeCase("id"))
}

// validateErr returns a real validator error for a field named DueDate.
func validateErr(t *testing.T) error {
	t.Helper()
	type sample struct {
		DueDate int `validate:"gt=10"`
	}
	err := shared.ValidateRequest(sample{DueDate: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	return err
}
