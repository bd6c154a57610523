package analytics

import (
	"fmt"
	"strings"
)

// formatWithCommas renders n with thousands separators, e.g. 1234567 ->
// "1,234,567".
func formatWithCommas(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return roundTo(v, 100)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return roundTo(v, 10)
}

func roundTo(v float64, scale float64) float64 {
	if v >= 0 {
		return float64(int64(v*scale+0.5)) / scale
	}
	return float64(int64(v*scale-0.5)) / scale
}
