// Package mathutil provides the numeric helpers shared by the calculators:
// lenient parsing, clamping, rounding and percentage arithmetic.
package mathutil

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses raw as a floating-point number. Leading and trailing
// whitespace and "," digit grouping are ignored. Anything that does not parse
// to a finite number yields fallback.
func ParseNumber(raw string, fallback float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds value to the given number of decimal digits, rounding the
// scaled value half up (toward positive infinity). Binary representation
// decides ties, so RoundTo(1.005, 2) is 1.
func RoundTo(value float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Floor(value*scale+0.5) / scale
}

// GCD returns the greatest common divisor of the rounded magnitudes of a and
// b. It returns 1 when both are zero so callers can always divide by it.
func GCD(a, b float64) int64 {
	x := int64(math.Abs(math.Round(a)))
	y := int64(math.Abs(math.Round(b)))
	for y != 0 {
		x, y = y, x%y
	}
	if x == 0 {
		return 1
	}
	return x
}
