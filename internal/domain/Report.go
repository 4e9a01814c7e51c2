package domain

// ReportRow is one aggregated line of the report, keyed either by date
// (daily performance) or by campaign name (campaign performance).
type ReportRow struct {
	Date        string  `json:"date,omitempty"`
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type,omitempty"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	Ctr         string  `json:"ctr"`
	Cpc         string  `json:"cpc"`
}

type ReportSummary struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalCost        string  `json:"totalCost"`
	TotalConversions float64 `json:"totalConversions"`
	AverageCTR       string  `json:"averageCTR"`
	AverageCPC       string  `json:"averageCPC"`
}

type Report struct {
	DailyPerformance []*ReportRow   `json:"dailyPerformance"`
	Campaigns        []*ReportRow   `json:"campaigns"`
	Summary          *ReportSummary `json:"summary"`
	GeneratedAt      string         `json:"generatedAt"`
	DateRange        int            `json:"dateRange"`
}

type ReportExport struct {
	Data       []*DailyMetric `json:"data"`
	ExportedAt string         `json:"exportedAt"`
	Format     string         `json:"format"`
}
