package common

import (
	"math"
	"strconv"
)

// FormatFixed formats v with exactly digits decimals, rounding ties away
// from zero (1.25 -> "1.3", -0.25 -> "-0.3").
func FormatFixed(v float64, digits int) string {
	p := math.Pow10(digits)
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', digits, 64)
}

// FormatCompact formats v rounded to two decimals without trailing zeros.
// Used for pixel coordinates.
func FormatCompact(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatExact formats v with the shortest representation that round-trips.
func FormatExact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
