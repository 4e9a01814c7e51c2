package domain

// CampaignMetrics is the aggregated snapshot for a campaign over the
// requested date range. Ctr and Cpc are two-decimal display strings and
// "0.00" when their denominator is zero.
type CampaignMetrics struct {
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	Ctr              string  `json:"ctr"`
	Cost             float64 `json:"cost"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
	Cpc              string  `json:"cpc"`
}

// Campaign is one logical campaign per account; ID is the upstream
// campaign id. Re-syncing overwrites the metrics snapshot.
type Campaign struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	Type      string          `json:"type"`
	Metrics   CampaignMetrics `json:"metrics"`
	DailyData []*DailyPoint   `json:"dailyData,omitempty"`
}

type CampaignsResponse struct {
	Campaigns []*Campaign `json:"campaigns"`
	Account   string      `json:"account"`
}
