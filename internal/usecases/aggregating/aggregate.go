// Package aggregating reduces dated metric rows into totals with the
// derived ctr and cpc figures. It is pure: no I/O, no clock, no config.
package aggregating

import (
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// ZeroRatio is the display value of ctr and cpc when their denominator
// is zero. Derived figures never divide by zero and never render NaN.
const ZeroRatio = "0.00"

// Totals is the aggregate of one group of rows. Ctr and Cpc are
// two-decimal display strings; Daily keeps the per-row points in input
// order for charting.
type Totals struct {
	Key    string
	Name   string
	Status string
	Type   string

	Impressions      int64
	Clicks           int64
	Cost             float64
	Conversions      float64
	ConversionsValue float64
	Ctr              string
	Cpc              string

	Daily []*domain.DailyPoint
}

// Fold groups rows by Key and accumulates each group's totals. Group
// order follows the first appearance of each key, and the group's
// name, status and type come from its first row.
func Fold(rows []domain.MetricRow) []*Totals {
	byKey := make(map[string]*Totals)
	ordered := make([]*Totals, 0)

	for _, row := range rows {
		totals, ok := byKey[row.Key]
		if !ok {
			totals = &Totals{
				Key:    row.Key,
				Name:   row.Name,
				Status: row.Status,
				Type:   row.Type,
			}
			byKey[row.Key] = totals
			ordered = append(ordered, totals)
		}

		accumulate(totals, row)
	}

	for _, totals := range ordered {
		finalize(totals)
	}

	return ordered
}

// FoldAll reduces every row into a single aggregate regardless of key.
// An empty input yields zero totals with "0.00" ratios, not nil.
func FoldAll(rows []domain.MetricRow) *Totals {
	totals := &Totals{}

	for _, row := range rows {
		accumulate(totals, row)
	}

	finalize(totals)

	return totals
}

func accumulate(totals *Totals, row domain.MetricRow) {
	cost := rowCost(row)

	totals.Impressions += row.Impressions
	totals.Clicks += row.Clicks
	totals.Cost += cost
	totals.Conversions += row.Conversions
	totals.ConversionsValue += row.ConversionsValue

	totals.Daily = append(totals.Daily, &domain.DailyPoint{
		Date:        row.Date,
		Impressions: row.Impressions,
		Clicks:      row.Clicks,
		Ctr:         row.Ctr,
		Cost:        utils.RoundWithTwoDecimalPlace(cost),
		Conversions: row.Conversions,
	})
}

func finalize(totals *Totals) {
	totals.Cost = utils.RoundWithTwoDecimalPlace(totals.Cost)
	totals.Conversions = utils.RoundWithTwoDecimalPlace(totals.Conversions)
	totals.ConversionsValue = utils.RoundWithTwoDecimalPlace(totals.ConversionsValue)
	totals.Ctr = Ratio(float64(totals.Clicks)*100, float64(totals.Impressions))
	totals.Cpc = Ratio(totals.Cost, float64(totals.Clicks))
}

// rowCost accepts rows from either side of the cache boundary: upstream
// rows carry micros, stored rows carry currency units.
func rowCost(row domain.MetricRow) float64 {
	return row.Cost + utils.MicrosToUnits(row.CostMicros)
}

// Ratio renders numerator/denominator with two decimals, or ZeroRatio
// when the denominator is zero.
func Ratio(numerator, denominator float64) string {
	if denominator == 0 {
		return ZeroRatio
	}

	return utils.FormatTwoDecimal(numerator / denominator)
}
