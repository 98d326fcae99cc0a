package mathutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback float64
		expected float64
	}{
		{"Integer", "42", 0, 42},
		{"Decimal", "3.25", 0, 3.25},
		{"Negative", "-7.5", 0, -7.5},
		{"Whitespace", "  12  ", 0, 12},
		{"Grouped thousands", "1,250,000", 0, 1250000},
		{"Exponent", "1e3", 0, 1000},
		{"Empty uses fallback", "", 9, 9},
		{"Garbage uses fallback", "abc", 5, 5},
		{"Trailing garbage uses fallback", "12abc", 5, 5},
		{"NaN uses fallback", "NaN", 1, 1},
		{"Infinity uses fallback", "Inf", 2, 2},
		{"Overflow uses fallback", "1e400", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.raw, tt.fallback))
		})
	}
}

func TestParseNumberRoundTripIsIdempotent(t *testing.T) {
	inputs := []string{"0", "1", "-1", "0.1", "1234.5678", "1e-7", "98765432.1", "  5 ", "1,000", "bogus"}
	for _, raw := range inputs {
		first := ParseNumber(raw, 0)
		second := ParseNumber(strconv.FormatFloat(first, 'g', -1, 64), 0)
		assert.Equal(t, first, second, "round trip of %q", raw)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(30, 0, 10))
	assert.Equal(t, 10.0, Clamp(10, 0, 10))
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		digits   int
		expected float64
	}{
		{"Two digits", 3.14159, 2, 3.14},
		{"Zero digits", 2.5, 0, 3},
		{"Four digits", 0.123456, 4, 0.1235},
		{"Negative half rounds up", -2.5, 0, -2},
		{"Negative below half", -2.6, 0, -3},
		{"Binary representation of 1.005 rounds down", 1.005, 2, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundTo(tt.value, tt.digits))
		})
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected int64
	}{
		{"Common factor", 12, 18, 6},
		{"Coprime", 7, 9, 1},
		{"One zero", 0, 5, 5},
		{"Both zero guards division", 0, 0, 1},
		{"Negative magnitudes", -24, 36, 12},
		{"Rounded inputs", 11.6, 8.4, 4},
		{"Screen ratio", 1920, 1080, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GCD(tt.a, tt.b))
		})
	}
}
