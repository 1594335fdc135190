package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-registry/internal/domain"
)

// getPathTaskID extracts a task ID from the URL path parameters.
// IDs are positive decimal integers; anything else is a validation error.
func getPathTaskID(r *http.Request, paramName string) (uint64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseUint(pathParam, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}
