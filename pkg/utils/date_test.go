package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	days, err := ParseDateRange("", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, days, "empty parameter falls back to the default")

	days, err = ParseDateRange("7", 30)
	require.NoError(t, err)
	assert.Equal(t, 7, days)

	_, err = ParseDateRange("yesterday", 30)
	assert.Error(t, err)

	_, err = ParseDateRange("-3", 30)
	assert.Error(t, err)

	_, err = ParseDateRange("0", 30)
	assert.Error(t, err)
}

func TestRangeBounds(t *testing.T) {
	now := time.Date(2026, time.August, 31, 23, 15, 0, 0, time.UTC)

	start, end := RangeBounds(30, now)

	assert.Equal(t, "2026-08-01", start.Format(time.DateOnly))
	assert.Equal(t, "2026-08-31", end.Format(time.DateOnly))
	assert.Zero(t, end.Hour())
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2026-08-30", NormalizeDate("20260830"))
	assert.Equal(t, "2026-08-30", NormalizeDate("2026-08-30"))
	assert.Equal(t, "not-a-date", NormalizeDate("not-a-date"))
}
