// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount like the printed price list: two
// decimals, a comma as decimal separator and spaces between thousands.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
