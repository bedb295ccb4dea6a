package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"saka/internal/application/keywords"
	"saka/internal/domain/ads"
	"saka/internal/domain/bulksheet"
)

// Result summarizes a single pipeline run
type Result struct {
	RunID    string `json:"run_id"`
	Rows     int    `json:"rows"`
	Uploaded bool   `json:"uploaded"`
}

// Service defines the search terms to SA360 keywords pipeline
type Service interface {
	Run(ctx context.Context) (*Result, error)
}

type service struct {
	source      ads.ReportSource
	transformer keywords.Service
	uploader    bulksheet.Uploader
	customerID  string
	campaignIDs []string
	logger      *zap.Logger
}

// NewService creates a new pipeline service
func NewService(source ads.ReportSource, transformer keywords.Service, uploader bulksheet.Uploader,
	customerID string, campaignIDs []string, logger *zap.Logger) Service {
	return &service{
		source:      source,
		transformer: transformer,
		uploader:    uploader,
		customerID:  customerID,
		campaignIDs: campaignIDs,
		logger:      logger,
	}
}

// Run fetches both reports, transforms them and uploads the resulting
// bulksheet. A run with no qualifying keywords is a successful no-op.
// Errors abort the run, there are no retries.
func (s *service) Run(ctx context.Context) (*Result, error) {
	runID := RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := s.logger.With(zap.String("run_id", runID))

	logger.Info("starting keyword pipeline run",
		zap.String("customer_id", s.customerID),
		zap.Strings("campaign_ids", s.campaignIDs))

	terms, err := s.source.SearchTerms(ctx, s.customerID, s.campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search terms: %w", err)
	}

	stats, err := s.source.AdGroupStats(ctx, s.customerID, s.campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ad group stats: %w", err)
	}

	table, err := s.transformer.TransformSearchTermsToKeywords(terms, stats)
	if err != nil {
		return nil, fmt.Errorf("failed to transform search terms: %w", err)
	}

	if table.IsEmpty() {
		logger.Info("no keywords qualified, skipping upload")
		return &Result{RunID: runID, Uploaded: false}, nil
	}

	if err := s.uploader.UploadKeywords(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to upload bulksheet: %w", err)
	}

	logger.Info("keyword pipeline run finished", zap.Int("rows", table.Len()))

	return &Result{RunID: runID, Rows: table.Len(), Uploaded: true}, nil
}
