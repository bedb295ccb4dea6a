package router

import (
	"net/http"

	"go.uber.org/zap"

	"saka/internal/delivery/http/handler"
	"saka/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Keywords *handler.KeywordsHandler
}

// Setup configures all routes for the service
func Setup(handlers Handlers, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Middleware helpers
	logged := middleware.RequestLogger(logger)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	// ==================
	// Keyword routes
	// ==================
	mux.HandleFunc("/api/keywords/upload", chain(handlers.Keywords.Upload, logged))

	// ==================
	// Health
	// ==================
	mux.HandleFunc("/health", handler.Health)

	return mux
}
