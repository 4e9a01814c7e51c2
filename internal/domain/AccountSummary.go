package domain

// AccountSummary is the account-level aggregate over a date range. Cost
// and ConversionsValue are two-decimal display strings, matching the
// dashboard cards.
type AccountSummary struct {
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	Ctr              string  `json:"ctr"`
	Cost             string  `json:"cost"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue string  `json:"conversionsValue"`
	Cpc              string  `json:"cpc"`
}

type AccountSummaryResponse struct {
	Summary   *AccountSummary `json:"summary"`
	DailyData []*DailyPoint   `json:"dailyData"`
}
