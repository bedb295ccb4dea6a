package ads

// SearchTermRow represents a single row of the search terms report
type SearchTermRow struct {
	SearchTerm   string  `json:"search_term"`
	Status       string  `json:"status"`
	Conversions  float64 `json:"conversions"`
	Clicks       int64   `json:"clicks"`
	AdGroupName  string  `json:"ad_group_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	CTR          float64 `json:"ctr"`
	KeywordText  string  `json:"keyword_text"`
}

// AdGroupStat represents aggregate ad group performance over the report window
type AdGroupStat struct {
	AdGroupName string  `json:"ad_group_name"`
	CTR         float64 `json:"ctr"`
}

// CTRByAdGroup builds a CTR baseline lookup keyed by ad group name.
// When the same name appears more than once the later stat wins.
func CTRByAdGroup(stats []AdGroupStat) map[string]float64 {
	baselines := make(map[string]float64, len(stats))
	for _, stat := range stats {
		baselines[stat.AdGroupName] = stat.CTR
	}
	return baselines
}
