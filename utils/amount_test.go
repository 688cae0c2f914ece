package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	cases := map[string]string{
		"1,234,567.89":  "1234567.89",
		"TSH 45,000":    "45000",
		"TZS 100000.00": "100000",
		"118,000.00":    "118000",
		"  18 ":         "18",
		"-500.00":       "-500",
	}
	for input, want := range cases {
		got, err := NormalizeAmount(input)
		assert.NoError(t, err, input)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s -> %s", input, got)
	}
}

func TestNormalizeAmountRejectsNonNumbers(t *testing.T) {
	for _, input := range []string{"", "-", ".", ",", "N/A", "TSH"} {
		_, err := NormalizeAmount(input)
		assert.ErrorIs(t, err, ErrNotANumber, input)
	}
}

func TestNormalizeAmountKeepsExactValue(t *testing.T) {
	got, err := NormalizeAmount("0.1")
	assert.NoError(t, err)
	assert.Equal(t, "0.3", got.Add(got).Add(got).String())
}
