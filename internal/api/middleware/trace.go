package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/exercise-tracker/internal/api/shared"
	"github.com/phrazzld/exercise-tracker/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context, along with a logger carrying that trace ID. It should be applied
// early in the chain so every later handler can log with the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
