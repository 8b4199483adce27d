// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
)

// FormatAmount formats a money value with comma-grouped integer digits and
// 2 decimals. e.g., 1234567.5 -> "1,234,567.50"
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	remainder := len(intPart) % 3
	if remainder > 0 {
		b.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatMoney formats an amount with its currency label.
func FormatMoney(v float64, currency string) string {
	return FormatAmount(v) + " " + currency
}

// FormatSigned formats an amount with an explicit leading sign.
func FormatSigned(v float64) string {
	if v >= 0 {
		return "+" + FormatAmount(v)
	}
	return FormatAmount(v)
}
