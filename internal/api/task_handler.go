package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-registry/internal/api/shared"
	"github.com/phrazzld/task-registry/internal/domain"
	"github.com/phrazzld/task-registry/internal/platform/logger"
	"github.com/phrazzld/task-registry/internal/service"
	"github.com/phrazzld/task-registry/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// RegisterRoutes mounts the task endpoints on r.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Patch("/{id}/status", h.SetTaskStatus)
	})
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if !h.decodeAndValidate(w, r, log, &req) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.Description, req.DueDate)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.taskService.ListTasks(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	task, found := h.taskService.GetTask(r.Context(), id)
	if !found {
		h.respondNotFound(w, r)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !h.decodeAndValidate(w, r, log, &req) {
		return
	}

	task, found, err := h.taskService.UpdateTask(r.Context(), id, req.Title, req.Description, req.DueDate)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	if !found {
		h.respondNotFound(w, r)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
// The removed task is returned in the response body.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	task, found := h.taskService.DeleteTask(r.Context(), id)
	if !found {
		h.respondNotFound(w, r)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// SetTaskStatus handles PATCH /tasks/{id}/status requests
func (h *TaskHandler) SetTaskStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	var req SetTaskStatusRequest
	if !h.decodeAndValidate(w, r, log, &req) {
		return
	}

	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	task, found, err := h.taskService.SetTaskStatus(r.Context(), id, status)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	if !found {
		h.respondNotFound(w, r)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// decodeAndValidate parses the JSON body into req and runs struct validation.
// It writes a 400 response and returns false on failure.
func (h *TaskHandler) decodeAndValidate(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	req interface{},
) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}

// pathTaskID extracts the {id} path parameter, writing a 400 response if it is invalid.
func (h *TaskHandler) pathTaskID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := getPathTaskID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) respondNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithErrorAndLog(w, r, http.StatusNotFound,
		GetSafeErrorMessage(store.ErrTaskNotFound), store.ErrTaskNotFound)
}

func (h *TaskHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
