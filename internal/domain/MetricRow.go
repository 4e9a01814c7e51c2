package domain

// MetricRow is a normalized dated metric row, the aggregation input shape.
// Rows coming from the upstream API carry CostMicros; rows read back from
// the store carry Cost in currency units. Dates are ISO (normalization
// happens at the producing boundary, never inside aggregation).
type MetricRow struct {
	Key    string
	Name   string
	Status string
	Type   string
	Date   string

	Impressions      int64
	Clicks           int64
	CostMicros       int64
	Cost             float64
	Ctr              float64
	Conversions      float64
	ConversionsValue float64
}
