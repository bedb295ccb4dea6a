package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"saka/internal/application/keywords"
	"saka/internal/application/pipeline"
	"saka/internal/delivery/http/handler"
	"saka/internal/delivery/http/router"
	"saka/internal/infrastructure/config"
	"saka/internal/infrastructure/googleads"
	"saka/internal/infrastructure/sa360"
	"saka/internal/infrastructure/secrets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Fetch secrets
	secretManager, err := secrets.NewManager(ctx, logger)
	if err != nil {
		logger.Fatal("failed to create secret manager", zap.Error(err))
	}
	defer secretManager.Close()

	rawCredentials, err := secretManager.AccessLatest(ctx, cfg.GCPProjectID, secrets.GoogleAdsAPICredentials)
	if err != nil {
		logger.Fatal("failed to read google ads api credentials", zap.Error(err))
	}

	credentials, err := googleads.ParseCredentials(rawCredentials)
	if err != nil {
		logger.Fatal("failed to parse google ads api credentials", zap.Error(err))
	}

	sftpPassword, err := secretManager.AccessLatest(ctx, cfg.GCPProjectID, secrets.SA360SFTPPassword)
	if err != nil {
		logger.Fatal("failed to read sa360 sftp password", zap.Error(err))
	}

	// Initialize clients
	adsClient := googleads.NewClient(ctx, credentials, logger)

	sa360Client, err := sa360.NewClient(cfg.SFTPHostname, cfg.SFTPPort, cfg.SFTPUsername, sftpPassword, logger)
	if err != nil {
		logger.Fatal("failed to create sa360 client", zap.Error(err))
	}

	// Initialize services
	transformer := keywords.NewService(keywords.Settings{
		ClicksThreshold:           cfg.ClicksThreshold,
		ConversionsThreshold:      cfg.ConversionsThreshold,
		SearchTermTokensThreshold: cfg.SearchTermTokensThreshold,
		AccountName:               cfg.SA360AccountName,
		Label:                     cfg.SA360Label,
		LandingPage:               cfg.KeywordLandingPage,
		MaxCPC:                    cfg.KeywordMaxCPC,
	}, logger)
	pipelineSvc := pipeline.NewService(adsClient, transformer, sa360Client, cfg.CustomerID, cfg.CampaignIDs, logger)

	// Initialize handlers
	keywordsHandler := handler.NewKeywordsHandler(pipelineSvc, logger)

	// Setup routes
	handlers := router.Handlers{
		Keywords: keywordsHandler,
	}
	mux := router.Setup(handlers, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("customer_id", cfg.CustomerID),
		zap.Int("campaign_filters", len(cfg.CampaignIDs)),
	)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = parsed

	return zapConfig.Build()
}
