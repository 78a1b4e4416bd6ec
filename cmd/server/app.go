package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/exercise-tracker/internal/config"
	"github.com/phrazzld/exercise-tracker/internal/platform/memory"
	"github.com/phrazzld/exercise-tracker/internal/platform/metrics"
	"github.com/phrazzld/exercise-tracker/internal/platform/postgres"
	"github.com/phrazzld/exercise-tracker/internal/service"
	"github.com/phrazzld/exercise-tracker/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metricsNamespace prefixes the database pool metrics.
const metricsNamespace = "exercise_tracker"

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when running on the memory driver.
	db *sql.DB

	userStore     store.UserStore
	exerciseStore store.ExerciseStore

	exerciseService service.ExerciseService

	registry    *prometheus.Registry
	httpMetrics *metrics.HTTP
}

// newApplication creates a new application instance with all dependencies
// initialized. db must be non-nil for the postgres driver and is ignored for
// the memory driver.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres driver selected but no database connection provided")
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
		app.userStore = postgres.NewPostgresUserStore(db, logger)
		app.exerciseStore = postgres.NewPostgresExerciseStore(db, logger)
		app.registry.MustRegister(collectors.NewDBStatsCollector(db, metricsNamespace))
	case config.DriverMemory:
		mem := memory.New()
		app.userStore = mem.Users()
		app.exerciseStore = mem.Exercises()
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	var err error
	app.exerciseService, err = service.NewExerciseService(app.userStore, app.exerciseStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise service: %w", err)
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.httpMetrics = metrics.NewHTTP(app.registry)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
