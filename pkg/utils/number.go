package utils

import (
	"math"
	"strconv"
)

// MicrosPerUnit is the fixed-point scale of upstream monetary values.
const MicrosPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatTwoDecimal renders a float with exactly two decimal places, the
// display form used for ctr, cpc and currency totals.
func FormatTwoDecimal(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)
}

// MicrosToUnits converts a micro-currency amount into currency units.
func MicrosToUnits(micros int64) float64 {
	return float64(micros) / MicrosPerUnit
}
