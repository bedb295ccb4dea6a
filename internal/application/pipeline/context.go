package pipeline

import "context"

// contextKey is the type for context keys
type contextKey string

// RunIDContextKey is the key used to store the run id in context
const RunIDContextKey contextKey = "run_id"

// WithRunID returns a context carrying the pipeline run id
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDContextKey, runID)
}

// RunIDFromContext retrieves the run id from the context
func RunIDFromContext(ctx context.Context) string {
	runID, ok := ctx.Value(RunIDContextKey).(string)
	if !ok {
		return ""
	}
	return runID
}
