package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned when a candidate amount string carries no
// parseable numeric content.
var ErrNotANumber = errors.New("not a number")

var amountNoiseRe = regexp.MustCompile(`[^\d.,\-]`)

// NormalizeAmount parses a noisy monetary string (currency codes, spaces,
// thousands commas) into an exact decimal. No binary floating conversion
// happens here, so precision is preserved.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountNoiseRe.ReplaceAllString(s, ""))
	if cleaned == "" || cleaned == "." || cleaned == "," || cleaned == "-" {
		return decimal.Decimal{}, ErrNotANumber
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, ErrNotANumber
	}
	return d, nil
}

// toDecimal is the lenient form used inside extractors: nil on failure
// instead of an error, so one bad amount never blocks other fields.
func toDecimal(s string) *decimal.Decimal {
	d, err := NormalizeAmount(s)
	if err != nil {
		return nil
	}
	return &d
}
