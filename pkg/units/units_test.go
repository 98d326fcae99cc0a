package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertLinear(t *testing.T) {
	tests := []struct {
		name     string
		family   Family
		value    float64
		from, to string
		expected float64
	}{
		{"Mile to kilometers", Length, 1, "mi", "km", 1.609344},
		{"Feet to inches", Length, 3, "ft", "in", 36},
		{"Same unit", Length, 42.5, "m", "m", 42.5},
		{"Centimeters to inches", Length, 2.54, "cm", "in", 1},
		{"Pounds to kilograms", Mass, 1, "lb", "kg", 0.45359237},
		{"Stone to pounds", Mass, 1, "st", "lb", 14},
		{"Kilograms to ounces", Mass, 1, "kg", "oz", 35.27396195},
		{"Gibibyte to megabytes", DataStorage, 1, "GiB", "MB", 1073.741824},
		{"Terabyte to tebibytes", DataStorage, 1, "TB", "TiB", 0.9094947017729282},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(tt.family, tt.value, tt.from, tt.to)
			require.True(t, ok)
			assert.InDelta(t, tt.expected, got, 1e-8)
		})
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	_, ok := Convert(Length, 1, "furlong", "m")
	assert.False(t, ok)

	_, ok = Convert(Length, 1, "m", "kg")
	assert.False(t, ok, "units must share a family")

	_, ok = Convert(Temperature, 1, "C", "R")
	assert.False(t, ok)
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		expected float64
	}{
		{100, "C", "F", 212},
		{32, "F", "C", 0},
		{0, "C", "K", 273.15},
		{-40, "F", "C", -40},
		{300, "K", "F", 80.33},
		{98.6, "F", "C", 37},
	}

	for _, tt := range tests {
		got, ok := ConvertTemperature(tt.value, tt.from, tt.to)
		require.True(t, ok)
		assert.InDelta(t, tt.expected, got, 1e-9, "%v %s -> %s", tt.value, tt.from, tt.to)
	}
}

func TestListKeepsDisplayOrder(t *testing.T) {
	symbols := func(us []Unit) []string {
		var out []string
		for _, u := range us {
			out = append(out, u.Symbol)
		}
		return out
	}
	assert.Equal(t, []string{"mg", "g", "kg", "t", "oz", "lb", "st"}, symbols(List(Mass)))
	assert.Equal(t, []string{"C", "F", "K"}, symbols(List(Temperature)))
	assert.Empty(t, List(Family("volume")))
}
