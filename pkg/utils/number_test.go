package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 25.0, RoundWithTwoDecimalPlace(25.0))
	assert.Equal(t, 0.33, RoundWithTwoDecimalPlace(1.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestFormatTwoDecimal(t *testing.T) {
	assert.Equal(t, "5.00", FormatTwoDecimal(5))
	assert.Equal(t, "0.50", FormatTwoDecimal(0.5))
	assert.Equal(t, "0.00", FormatTwoDecimal(0))
	assert.Equal(t, "3.33", FormatTwoDecimal(10.0/3.0))
}

func TestMicrosToUnits(t *testing.T) {
	assert.Equal(t, 25.0, MicrosToUnits(25_000_000))
	assert.Equal(t, 0.0, MicrosToUnits(0))
	assert.Equal(t, 0.5, MicrosToUnits(500_000))
}
