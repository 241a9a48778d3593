// Package format renders dollar amounts the way the result text expects:
// "$1.2M" at a million and up, "$45k" at a thousand and up, "$500" below.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency renders amount in compact notation. Negative amounts keep the
// sign in front of the dollar symbol.
func Currency(amount float64) string {
	if amount < 0 {
		return "-" + Currency(-amount)
	}
	switch {
	case amount >= 1000000:
		return "$" + compact(amount/1000000) + "M"
	case amount >= 1000:
		return "$" + compact(amount/1000) + "k"
	default:
		return fmt.Sprintf("$%.0f", amount)
	}
}

// CurrencyWhole renders amount with thousands separators and no decimals,
// for exact figures like "$141,400".
func CurrencyWhole(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// compact renders one decimal place, dropping a trailing ".0" so $45.0k
// reads $45k.
func compact(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
