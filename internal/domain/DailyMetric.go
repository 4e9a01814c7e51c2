package domain

// DailyPoint is one dated slice of a campaign's or account's metrics as
// served in responses and charts.
type DailyPoint struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Ctr         float64 `json:"ctr"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
}

// DailyMetric is the persisted per-(account, campaign, date) row.
// Upserts replace the numeric fields, they never accumulate.
type DailyMetric struct {
	ID          int64   `json:"id"`
	AccountID   int64   `json:"account_id"`
	CampaignID  string  `json:"campaign_id"`
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Ctr         float64 `json:"ctr"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`

	// Joined from campaigns for report generation; empty elsewhere.
	CampaignName string `json:"campaign_name,omitempty"`
	CampaignType string `json:"campaign_type,omitempty"`
}

type PerformanceResponse struct {
	Performance []*DailyMetric `json:"performance"`
}
