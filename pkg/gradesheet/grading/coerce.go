// Package grading derives totals, percentages and grades from subject marks.
package grading

import (
	"math"
	"strconv"
	"strings"
)

// CoerceMark converts a raw cell value to a mark.
// Empty, non-numeric and non-finite values become 0. It never fails.
func CoerceMark(s string) float64 {
	v, ok := ParseMark(s)
	if !ok {
		return 0
	}
	return v
}

// ParseMark parses a raw cell value as a finite number.
// ok is false when CoerceMark would fall back to 0.
func ParseMark(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
