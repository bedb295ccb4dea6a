package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"saka/internal/application/pipeline"
)

// KeywordsHandler handles keyword pipeline requests
type KeywordsHandler struct {
	pipeline pipeline.Service
	logger   *zap.Logger
}

// NewKeywordsHandler creates a new keywords handler
func NewKeywordsHandler(pipelineService pipeline.Service, logger *zap.Logger) *KeywordsHandler {
	return &KeywordsHandler{
		pipeline: pipelineService,
		logger:   logger,
	}
}

// Upload handles POST /api/keywords/upload. It triggers a full pipeline run
// and reports one of the two terminal outcomes.
func (h *KeywordsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.pipeline.Run(r.Context())
	if err != nil {
		h.logger.Error("keyword pipeline run failed", zap.Error(err))
		SendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !result.Uploaded {
		SendSuccess(w, "Finished: No keywords found to upload to SA 360.", result)
		return
	}

	SendSuccess(w, fmt.Sprintf("Success: Uploaded bulksheet with %d row(s).", result.Rows), result)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	SendSuccess(w, "ok", nil)
}
