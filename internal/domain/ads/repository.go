package ads

import "context"

// ReportSource defines the contract for fetching advertising reports
type ReportSource interface {
	SearchTerms(ctx context.Context, customerID string, campaignIDs []string) ([]SearchTermRow, error)
	AdGroupStats(ctx context.Context, customerID string, campaignIDs []string) ([]AdGroupStat, error)
}
