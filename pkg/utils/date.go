package utils

import (
	"fmt"
	"strconv"
	"time"
)

// CompactDate is the date layout the Google Ads API expects in GAQL ranges.
const CompactDate = "20060102"

// ParseDateRange converts the dateRange query parameter (a number of days)
// into an inclusive [today-N, today] window.
func ParseDateRange(raw string, defaultDays int) (int, error) {
	if raw == "" {
		return defaultDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid dateRange value: %q", raw)
	}

	return days, nil
}

// RangeBounds returns the start and end of an inclusive lookback window
// ending today, both normalized to midnight.
func RangeBounds(days int, now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -days)
	return start, end
}

// NormalizeDate converts an upstream date into ISO form. The reporting API
// returns dates either compact (20060102) or already ISO (2006-01-02)
// depending on the endpoint; everything past this boundary is ISO.
func NormalizeDate(raw string) string {
	if len(raw) == len(CompactDate) {
		if t, err := time.Parse(CompactDate, raw); err == nil {
			return t.Format(time.DateOnly)
		}
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.Format(time.DateOnly)
	}

	return raw
}
