package loader

import (
	"math"
	"strconv"
)

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// parseYear converts a raw cell to a release year.
// Integral floats such as "2020.0" are accepted.
func parseYear(s string) (int, bool) {
	switch v := parseValue(s).(type) {
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int(v), true
		}
	}
	return 0, false
}

// parseRating converts a raw cell to a rating.
func parseRating(s string) (float64, bool) {
	switch v := parseValue(s).(type) {
	case int64:
		return float64(v), true
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}
	return 0, false
}
