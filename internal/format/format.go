// Package format renders model outputs for display: comma-grouped
// dollar amounts and head counts, fixed-precision percentages.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Dollars formats a currency amount rounded to whole dollars,
// e.g. 40000 -> "$40,000".
func Dollars(v float64) string {
	if v < 0 {
		return "-" + Dollars(-v)
	}
	return "$" + group(int64(math.Round(v)))
}

// Count formats a head count rounded to a whole number,
// e.g. 6123456.7 -> "6,123,457".
func Count(v float64) string {
	if v < 0 {
		return "-" + Count(-v)
	}
	return group(int64(math.Round(v)))
}

// Percent formats a percentage (0-100 scale) with one decimal,
// e.g. 30.49 -> "30.5%".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// group renders n with thousands separators.
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
