package googleads

import (
	"hash/fnv"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Placeholder data served when the reporting credentials are missing,
// so the dashboard stays usable in local development. Values are
// derived from a hash of (customer, campaign, date) and therefore
// stable across requests.

var placeholderCampaigns = []struct {
	id, name, campaignType string
}{
	{"2001", "Brand - Search", "SEARCH"},
	{"2002", "Retargeting - Display", "DISPLAY"},
	{"2003", "Leads - Performance Max", "PERFORMANCE_MAX"},
}

func placeholderAccount(customerID string) *domain.Account {
	return &domain.Account{
		GoogleAdsID: customerID,
		Name:        "Demo Account " + customerID,
		Currency:    "USD",
		TimeZone:    "America/New_York",
		Status:      domain.AccountStatusEnabled,
	}
}

func placeholderCampaignRows(customerID string, days int, now time.Time) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, (days+1)*len(placeholderCampaigns))

	forEachDay(days, now, func(date string) {
		for _, campaign := range placeholderCampaigns {
			row := placeholderRow(customerID+campaign.id, date)
			row.Key = campaign.id
			row.Name = campaign.name
			row.Status = domain.AccountStatusEnabled
			row.Type = campaign.campaignType
			rows = append(rows, row)
		}
	})

	return rows
}

func placeholderAccountRows(customerID string, days int, now time.Time) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, days+1)

	forEachDay(days, now, func(date string) {
		row := placeholderRow(customerID, date)
		row.Key = "account"
		rows = append(rows, row)
	})

	return rows
}

func forEachDay(days int, now time.Time, fn func(date string)) {
	start, end := utils.RangeBounds(days, now)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		fn(day.Format(time.DateOnly))
	}
}

func placeholderRow(seed, date string) domain.MetricRow {
	h := fnv.New64a()
	h.Write([]byte(seed))
	h.Write([]byte(date))
	n := int64(h.Sum64() % 10_000)

	impressions := 500 + n
	clicks := impressions * (2 + n%6) / 100
	costMicros := clicks * (400_000 + n*90)
	conversions := float64(clicks) / 18
	ctr := 0.0
	if impressions > 0 {
		ctr = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
	}

	return domain.MetricRow{
		Date:             date,
		Impressions:      impressions,
		Clicks:           clicks,
		CostMicros:       costMicros,
		Ctr:              ctr,
		Conversions:      utils.RoundWithTwoDecimalPlace(conversions),
		ConversionsValue: utils.RoundWithTwoDecimalPlace(conversions * 35),
	}
}
