package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-registry/internal/config"
	"github.com/phrazzld/task-registry/internal/events"
	"github.com/phrazzld/task-registry/internal/platform/memory"
	"github.com/phrazzld/task-registry/internal/service"
	"github.com/phrazzld/task-registry/internal/store"
)

// application holds all the shared application dependencies.
// The task store is created once here and shared by every request for the
// lifetime of the process.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter *events.InMemoryEventEmitter
	taskService  service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	if cfg.Events.LogEvents {
		app.eventEmitter.RegisterHandler(events.NewLoggingEventHandler(logger))
	}

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server and blocks until ctx is canceled
// or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles shutdown of application resources.
// Tasks are held only in memory, so this reports what is being discarded.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed",
		"tasks_discarded", app.taskStore.Len())
}
