package survey

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a raw cell to a float64, returning NaN for anything
// unparseable. Survey exports mix anglophone and Czech formatting, so a
// lone decimal comma ("0,5") is accepted alongside the usual "0.5".
// Parse failures are missing values, never errors.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}

	hasComma := strings.Contains(s, ",")
	hasPeriod := strings.Contains(s, ".")
	switch {
	case hasComma && !hasPeriod:
		// Comma as decimal separator
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma && hasPeriod:
		// Comma as thousands separator
		s = strings.ReplaceAll(s, ",", "")
	}
	s = strings.ReplaceAll(s, " ", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// FormatNumber renders a float as a canonical cell value. NaN becomes the
// empty cell, so FormatNumber(ParseNumber(x)) is stable under re-parsing.
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
