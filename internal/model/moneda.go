package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCOP renders an amount as Colombian pesos with dot thousand separators
// and no decimal places, e.g. 38000 → "$ 38.000".
func FormatCOP(v decimal.Decimal) string {
	neg := v.IsNegative()
	s := v.Abs().Round(0).String()

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}
