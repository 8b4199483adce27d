// Package money provides 2-decimal money arithmetic and amount parsing.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports a CLI amount that could not be parsed as a number.
var ErrInvalidAmount = errors.New("invalid amount")

// Round2 rounds a value to 2 fractional digits, half away from zero.
// All stored and displayed amounts go through this.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Tithe returns the 10% tithe portion of an income amount, rounded to
// 2 decimals. The result is positive for positive input.
func Tithe(income float64) float64 {
	return decimal.NewFromFloat(income).
		Mul(decimal.NewFromFloat(0.10)).
		Round(2).
		InexactFloat64()
}

// ParseAmount parses a signed amount from user input. Both dot and comma
// decimal separators are accepted. The result is rounded to 2 decimals.
func ParseAmount(s string) (float64, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if norm == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d.Round(2).InexactFloat64(), nil
}
