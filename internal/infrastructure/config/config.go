package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

// Config holds every environment-driven setting of the service
type Config struct {
	Port     string
	LogLevel string

	GCPProjectID string
	CustomerID   string
	CampaignIDs  []string

	ClicksThreshold           int
	ConversionsThreshold      int
	SearchTermTokensThreshold int

	SA360AccountName   string
	SA360Label         string
	KeywordLandingPage string
	KeywordMaxCPC      string

	SFTPHostname string
	SFTPPort     int
	SFTPUsername string
}

// Load reads the configuration from the environment. The first missing or
// malformed variable aborts the load.
func Load() (*Config, error) {
	gcpProjectID, err := getRequiredEnv("GCP_PROJECT_ID")
	if err != nil {
		return nil, err
	}

	customerID, err := getRequiredEnv("CUSTOMER_ID")
	if err != nil {
		return nil, err
	}

	sftpUsername, err := getRequiredEnv("SA360_SFTP_USERNAME")
	if err != nil {
		return nil, err
	}

	clicksThreshold, err := getEnvAsInt("CLICKS_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}

	conversionsThreshold, err := getEnvAsInt("CONVERSIONS_THRESHOLD", 0)
	if err != nil {
		return nil, err
	}

	searchTermTokensThreshold, err := getEnvAsInt("SEARCH_TERMS_TOKENS_THRESHOLD", 3)
	if err != nil {
		return nil, err
	}

	sftpPort, err := getEnvAsInt("SA360_SFTP_PORT", 19321)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                      getEnv("PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		GCPProjectID:              gcpProjectID,
		CustomerID:                customerID,
		CampaignIDs:               splitCampaignIDs(os.Getenv("CAMPAIGN_IDS")),
		ClicksThreshold:           clicksThreshold,
		ConversionsThreshold:      conversionsThreshold,
		SearchTermTokensThreshold: searchTermTokensThreshold,
		SA360AccountName:          getEnv("SA360_ACCOUNT_NAME", "Google"),
		SA360Label:                getEnv("SA360_LABEL", "SA_add"),
		KeywordLandingPage:        os.Getenv("KEYWORD_LANDING_PAGE"),
		KeywordMaxCPC:             os.Getenv("KEYWORD_MAX_CPC"),
		SFTPHostname:              getEnv("SA360_SFTP_HOSTNAME", "partnerupload.google.com"),
		SFTPPort:                  sftpPort,
		SFTPUsername:              sftpUsername,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s must be set", key)
	}
	return value, nil
}

// getEnvAsInt falls back to the default only when the variable is unset.
// A set but empty or non-numeric value is a configuration mistake and
// fails the load.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}

	return intVal, nil
}

// splitCampaignIDs parses the comma separated CAMPAIGN_IDS value.
// Empty means no campaign filter.
func splitCampaignIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	ids := strings.Split(raw, ",")
	for i := range ids {
		ids[i] = strings.TrimSpace(ids[i])
	}

	return ids
}
