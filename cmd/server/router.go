package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/exercise-tracker/internal/api"
	"github.com/phrazzld/exercise-tracker/internal/api/shared"
	apiMiddleware "github.com/phrazzld/exercise-tracker/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.httpMetrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	userHandler := api.NewUserHandler(app.exerciseService)
	exerciseHandler := api.NewExerciseHandler(app.exerciseService)

	r.Route("/api/exercise", func(r chi.Router) {
		r.Post("/new-user", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Post("/add", exerciseHandler.AddExercise)
		r.Get("/log", exerciseHandler.GetLog)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
