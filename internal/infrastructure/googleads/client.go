package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"saka/internal/domain/ads"
)

const (
	defaultEndpoint  = "https://googleads.googleapis.com"
	apiVersion       = "v16"
	customerIDLength = 10
)

// GAQL report queries. Both reports cover the last 30 days; search terms
// already added as keywords are filtered out by their review status.
const (
	searchTermsQuery = `
  SELECT
    search_term_view.search_term,
    search_term_view.status,
    metrics.conversions,
    metrics.clicks,
    ad_group.name,
    campaign.id,
    campaign.name,
    metrics.ctr,
    segments.keyword.info.text
  FROM
    search_term_view
  WHERE
    segments.date DURING LAST_30_DAYS
    AND search_term_view.status IN ('NONE', 'UNKNOWN')`

	adGroupStatsQuery = `
  SELECT
    ad_group.name,
    metrics.ctr
  FROM
    ad_group
  WHERE
    segments.date DURING LAST_30_DAYS`
)

// Credentials holds the Google Ads API OAuth2 credential set kept in Secret
// Manager. The JSON layout follows the configuration dict format of the
// official client libraries.
type Credentials struct {
	DeveloperToken  string `json:"developer_token"`
	ClientID        string `json:"client_id"`
	ClientSecret    string `json:"client_secret"`
	RefreshToken    string `json:"refresh_token"`
	LoginCustomerID string `json:"login_customer_id,omitempty"`
}

// ParseCredentials decodes the credential JSON fetched from Secret Manager
func ParseCredentials(raw string) (*Credentials, error) {
	var creds Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse google ads credentials: %w", err)
	}

	if creds.DeveloperToken == "" || creds.ClientID == "" ||
		creds.ClientSecret == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("google ads credentials are incomplete")
	}

	return &creds, nil
}

// Client fetches advertising reports from the Google Ads API over REST
type Client struct {
	httpClient *http.Client
	endpoint   string
	creds      *Credentials
	logger     *zap.Logger
}

// NewClient creates a Google Ads API client authenticating with the OAuth2
// refresh token flow.
func NewClient(ctx context.Context, creds *Credentials, logger *zap.Logger) *Client {
	oauthConfig := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Scopes: []string{
			"https://www.googleapis.com/auth/adwords",
		},
		Endpoint: google.Endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	}

	logger.Info("initialized google ads api client")

	return &Client{
		httpClient: oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token)),
		endpoint:   defaultEndpoint,
		creds:      creds,
		logger:     logger,
	}
}

func (c *Client) SearchTerms(ctx context.Context, customerID string, campaignIDs []string) ([]ads.SearchTermRow, error) {
	batches, err := c.searchStream(ctx, customerID, buildQuery(searchTermsQuery, campaignIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get search terms report: %w", err)
	}

	var rows []ads.SearchTermRow
	for _, batch := range batches {
		for _, result := range batch.Results {
			rows = append(rows, ads.SearchTermRow{
				SearchTerm:   result.SearchTermView.SearchTerm,
				Status:       result.SearchTermView.Status,
				Conversions:  result.Metrics.Conversions,
				Clicks:       result.Metrics.Clicks,
				AdGroupName:  result.AdGroup.Name,
				CampaignID:   strconv.FormatInt(result.Campaign.ID, 10),
				CampaignName: result.Campaign.Name,
				CTR:          result.Metrics.CTR,
				KeywordText:  result.Segments.Keyword.Info.Text,
			})
		}
	}

	c.logger.Info("fetched search terms report",
		zap.String("customer_id", customerID),
		zap.Int("rows", len(rows)))

	return rows, nil
}

func (c *Client) AdGroupStats(ctx context.Context, customerID string, campaignIDs []string) ([]ads.AdGroupStat, error) {
	batches, err := c.searchStream(ctx, customerID, buildQuery(adGroupStatsQuery, campaignIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get ad group report: %w", err)
	}

	var stats []ads.AdGroupStat
	for _, batch := range batches {
		for _, result := range batch.Results {
			stats = append(stats, ads.AdGroupStat{
				AdGroupName: result.AdGroup.Name,
				CTR:         result.Metrics.CTR,
			})
		}
	}

	c.logger.Info("fetched ad group report",
		zap.String("customer_id", customerID),
		zap.Int("rows", len(stats)))

	return stats, nil
}

// searchStreamBatch mirrors one element of the googleAds:searchStream
// response array. Int64 fields arrive as JSON strings.
type searchStreamBatch struct {
	Results []searchStreamRow `json:"results"`
}

type searchStreamRow struct {
	SearchTermView struct {
		SearchTerm string `json:"searchTerm"`
		Status     string `json:"status"`
	} `json:"searchTermView"`
	Metrics struct {
		Conversions float64 `json:"conversions"`
		Clicks      int64   `json:"clicks,string"`
		CTR         float64 `json:"ctr"`
	} `json:"metrics"`
	AdGroup struct {
		Name string `json:"name"`
	} `json:"adGroup"`
	Campaign struct {
		ID   int64  `json:"id,string"`
		Name string `json:"name"`
	} `json:"campaign"`
	Segments struct {
		Keyword struct {
			Info struct {
				Text string `json:"text"`
			} `json:"info"`
		} `json:"keyword"`
	} `json:"segments"`
}

func (c *Client) searchStream(ctx context.Context, customerID, query string) ([]searchStreamBatch, error) {
	if err := validateCustomerID(customerID); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/%s/customers/%s/googleAds:searchStream", c.endpoint, apiVersion, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.creds.DeveloperToken)
	if c.creds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.creds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google ads api returned %d: %s", resp.StatusCode, body)
	}

	var batches []searchStreamBatch
	if err := json.Unmarshal(body, &batches); err != nil {
		return nil, fmt.Errorf("failed to decode search stream response: %w", err)
	}

	return batches, nil
}

// validateCustomerID enforces the plain ten digit customer id form, no dashes
func validateCustomerID(customerID string) error {
	if len(customerID) != customerIDLength {
		return fmt.Errorf("%w: %q", ads.ErrInvalidCustomerID, customerID)
	}
	for _, r := range customerID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ads.ErrInvalidCustomerID, customerID)
		}
	}
	return nil
}

// buildQuery appends the optional campaign filter. An empty id list means
// every campaign is in scope.
func buildQuery(query string, campaignIDs []string) string {
	if len(campaignIDs) == 0 {
		return query
	}
	return query + fmt.Sprintf(" AND campaign.id IN (%s)", strings.Join(campaignIDs, ","))
}
