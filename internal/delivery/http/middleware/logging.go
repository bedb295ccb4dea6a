package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"saka/internal/application/pipeline"
)

// statusRecorder remembers the status code a handler wrote so the request
// log can carry it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger creates middleware that assigns every request a run id,
// places it in the request context and logs the request once it completes.
func RequestLogger(logger *zap.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			runID := uuid.NewString()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			ctx := pipeline.WithRunID(r.Context(), runID)

			next(recorder, r.WithContext(ctx))

			logger.Info("handled request",
				zap.String("run_id", runID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", recorder.status),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}
}
