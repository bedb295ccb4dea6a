package keywords

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"saka/internal/domain/ads"
	"saka/internal/domain/bulksheet"
)

// Settings holds the qualification thresholds and the fixed values stamped
// onto every generated bulksheet row. Empty LandingPage or MaxCPC means the
// matching optional column is left out of the bulksheet entirely.
type Settings struct {
	ClicksThreshold           int
	ConversionsThreshold      int
	SearchTermTokensThreshold int
	AccountName               string
	Label                     string
	LandingPage               string
	MaxCPC                    string
}

// Service defines the business logic for turning search terms into keywords
type Service interface {
	TransformSearchTermsToKeywords(terms []ads.SearchTermRow, stats []ads.AdGroupStat) (*bulksheet.Table, error)
}

type service struct {
	settings Settings
	logger   *zap.Logger
}

// NewService creates a new keywords service
func NewService(settings Settings, logger *zap.Logger) Service {
	return &service{settings: settings, logger: logger}
}

func (s *service) TransformSearchTermsToKeywords(terms []ads.SearchTermRow, stats []ads.AdGroupStat) (*bulksheet.Table, error) {
	maxCPC, err := formatMaxCPC(s.settings.MaxCPC)
	if err != nil {
		return nil, err
	}

	table := bulksheet.NewTable(s.settings.LandingPage != "", maxCPC != "")
	baselines := ads.CTRByAdGroup(stats)

	for _, term := range terms {
		for _, matchType := range s.matchTypes(term, baselines[term.AdGroupName]) {
			table.Append(bulksheet.Row{
				Account:     s.settings.AccountName,
				Campaign:    term.CampaignName,
				AdGroup:     term.AdGroupName,
				Keyword:     term.SearchTerm,
				MatchType:   matchType,
				Label:       s.settings.Label,
				LandingPage: s.settings.LandingPage,
				MaxCPC:      maxCPC,
			})
		}
	}

	s.logger.Info("transformed search terms into keywords",
		zap.Int("search_terms", len(terms)),
		zap.Int("keyword_rows", table.Len()))

	return table, nil
}

// matchTypes decides which keyword rows a search term produces. An empty
// result means the term did not qualify. All threshold comparisons are
// strict, equality never qualifies. An ad group missing from the stats
// report carries a zero CTR baseline, so any positive CTR beats it.
func (s *service) matchTypes(term ads.SearchTermRow, adGroupCTR float64) []bulksheet.MatchType {
	qualified := term.Conversions > float64(s.settings.ConversionsThreshold) ||
		(term.CTR > adGroupCTR && term.Clicks > int64(s.settings.ClicksThreshold))
	if !qualified {
		return nil
	}

	if len(strings.Fields(term.SearchTerm)) > s.settings.SearchTermTokensThreshold {
		return []bulksheet.MatchType{bulksheet.MatchTypeBroad}
	}

	return []bulksheet.MatchType{bulksheet.MatchTypeExact, bulksheet.MatchTypePhrase}
}

// formatMaxCPC normalizes the configured max CPC to two decimal places.
// An empty value means the max CPC column is not in use.
func formatMaxCPC(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	cpc, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", bulksheet.ErrInvalidMaxCPC, raw)
	}

	return cpc.StringFixed(2), nil
}
