package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestFoldAllDerivesCtrAndCpc(t *testing.T) {
	rows := []domain.MetricRow{
		{Date: "2026-08-30", Impressions: 1000, Clicks: 50, CostMicros: 25_000_000},
	}

	totals := FoldAll(rows)

	assert.Equal(t, int64(1000), totals.Impressions)
	assert.Equal(t, int64(50), totals.Clicks)
	assert.Equal(t, 25.0, totals.Cost)
	assert.Equal(t, "5.00", totals.Ctr)
	assert.Equal(t, "0.50", totals.Cpc)
}

func TestFoldAllEmptyInput(t *testing.T) {
	totals := FoldAll(nil)

	require.NotNil(t, totals)
	assert.Zero(t, totals.Impressions)
	assert.Zero(t, totals.Clicks)
	assert.Zero(t, totals.Cost)
	assert.Equal(t, ZeroRatio, totals.Ctr)
	assert.Equal(t, ZeroRatio, totals.Cpc)
}

func TestFoldAllZeroDenominators(t *testing.T) {
	totals := FoldAll([]domain.MetricRow{
		{Date: "2026-08-30", Impressions: 0, Clicks: 0, CostMicros: 5_000_000},
	})

	assert.Equal(t, ZeroRatio, totals.Ctr)
	assert.Equal(t, ZeroRatio, totals.Cpc)
	assert.Equal(t, 5.0, totals.Cost)
}

func TestFoldAllMixedCostSources(t *testing.T) {
	totals := FoldAll([]domain.MetricRow{
		{Clicks: 10, CostMicros: 10_000_000},
		{Clicks: 10, Cost: 10},
	})

	assert.Equal(t, 20.0, totals.Cost)
	assert.Equal(t, "1.00", totals.Cpc)
}

func TestFoldGroupsByKeyInFirstSeenOrder(t *testing.T) {
	rows := []domain.MetricRow{
		{Key: "b", Name: "Campaign B", Type: "SEARCH", Date: "2026-08-29", Impressions: 100, Clicks: 10, CostMicros: 4_000_000},
		{Key: "a", Name: "Campaign A", Type: "DISPLAY", Date: "2026-08-29", Impressions: 200, Clicks: 4},
		{Key: "b", Name: "renamed later", Type: "VIDEO", Date: "2026-08-30", Impressions: 100, Clicks: 10, CostMicros: 6_000_000},
	}

	groups := Fold(rows)

	require.Len(t, groups, 2)

	b := groups[0]
	assert.Equal(t, "b", b.Key)
	assert.Equal(t, "Campaign B", b.Name, "identity must come from the first row of the group")
	assert.Equal(t, "SEARCH", b.Type)
	assert.Equal(t, int64(200), b.Impressions)
	assert.Equal(t, int64(20), b.Clicks)
	assert.Equal(t, 10.0, b.Cost)
	assert.Equal(t, "10.00", b.Ctr)
	assert.Equal(t, "0.50", b.Cpc)
	require.Len(t, b.Daily, 2)
	assert.Equal(t, "2026-08-29", b.Daily[0].Date)
	assert.Equal(t, "2026-08-30", b.Daily[1].Date)

	a := groups[1]
	assert.Equal(t, "a", a.Key)
	assert.Equal(t, "2.00", a.Ctr)
	assert.Equal(t, ZeroRatio, a.Cpc, "zero cost still renders a two-decimal cpc")
}

func TestFoldIsIdempotentOnReplayedRows(t *testing.T) {
	rows := []domain.MetricRow{
		{Key: "a", Date: "2026-08-30", Impressions: 500, Clicks: 25, CostMicros: 12_500_000},
	}

	first := Fold(rows)
	second := Fold(rows)

	assert.Equal(t, first, second)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "2.50", Ratio(5, 2))
	assert.Equal(t, ZeroRatio, Ratio(5, 0))
	assert.Equal(t, "0.33", Ratio(1, 3))
}
