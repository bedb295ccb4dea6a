package bulksheet

// MatchType represents the targeting precision of a keyword
type MatchType string

const (
	MatchTypeBroad  MatchType = "broad"
	MatchTypeExact  MatchType = "exact"
	MatchTypePhrase MatchType = "phrase"
)

// SA360 bulk upload column names. The naming and order is a compatibility
// contract with the SA360 bulksheet format and must not change.
const (
	ColumnRowType     = "Row type"
	ColumnAction      = "Action"
	ColumnAccount     = "Account"
	ColumnCampaign    = "Campaign"
	ColumnAdGroup     = "Ad group"
	ColumnKeyword     = "Keyword"
	ColumnMatchType   = "Keyword match type"
	ColumnLabel       = "Label"
	ColumnLandingPage = "Keyword landing page"
	ColumnMaxCPC      = "Keyword max CPC"
)

// Every generated row creates a keyword.
const (
	RowTypeKeyword = "keyword"
	ActionCreate   = "create"
)

// Row represents a single keyword row of an SA360 bulksheet
type Row struct {
	Account     string    `json:"account"`
	Campaign    string    `json:"campaign"`
	AdGroup     string    `json:"ad_group"`
	Keyword     string    `json:"keyword"`
	MatchType   MatchType `json:"match_type"`
	Label       string    `json:"label"`
	LandingPage string    `json:"landing_page,omitempty"`
	MaxCPC      string    `json:"max_cpc,omitempty"`
}

// Table represents an SA360 bulksheet. The optional landing page and max CPC
// columns are decided once at construction, so every record in a single table
// carries exactly the same column set.
type Table struct {
	columns         []string
	rows            []Row
	withLandingPage bool
	withMaxCPC      bool
}

// NewTable creates a new Table with the core SA360 columns plus the requested
// optional columns appended in their fixed order
func NewTable(withLandingPage, withMaxCPC bool) *Table {
	columns := []string{
		ColumnRowType,
		ColumnAction,
		ColumnAccount,
		ColumnCampaign,
		ColumnAdGroup,
		ColumnKeyword,
		ColumnMatchType,
		ColumnLabel,
	}
	if withLandingPage {
		columns = append(columns, ColumnLandingPage)
	}
	if withMaxCPC {
		columns = append(columns, ColumnMaxCPC)
	}

	return &Table{
		columns:         columns,
		withLandingPage: withLandingPage,
		withMaxCPC:      withMaxCPC,
	}
}

// Append adds a keyword row to the table
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Columns returns the header cells in bulksheet order
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of keyword rows in the table
func (t *Table) Len() int {
	return len(t.rows)
}

// IsEmpty reports whether the table holds no keyword rows
func (t *Table) IsEmpty() bool {
	return len(t.rows) == 0
}

// Records materializes every row as CSV-ready cells aligned with Columns
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		record := []string{
			RowTypeKeyword,
			ActionCreate,
			row.Account,
			row.Campaign,
			row.AdGroup,
			row.Keyword,
			string(row.MatchType),
			row.Label,
		}
		if t.withLandingPage {
			record = append(record, row.LandingPage)
		}
		if t.withMaxCPC {
			record = append(record, row.MaxCPC)
		}
		records = append(records, record)
	}
	return records
}
