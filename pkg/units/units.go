// Package units holds the conversion tables used by the converter
// calculators. Linear families store each unit's size in a base unit as an
// exact decimal so that chained ratios do not pick up binary rounding error;
// temperature is affine and handled separately.
package units

import (
	"github.com/shopspring/decimal"
)

// Family groups units that can be converted into one another.
type Family string

const (
	Length      Family = "length"
	Mass        Family = "mass"
	DataStorage Family = "data"
	Temperature Family = "temperature"
)

// Unit describes one unit of measure.
type Unit struct {
	Symbol string
	Name   string
	Family Family
	// perBase is the number of base units in one of this unit.
	perBase decimal.Decimal
}

func unit(family Family, symbol, name, perBase string) Unit {
	return Unit{Symbol: symbol, Name: name, Family: family, perBase: decimal.RequireFromString(perBase)}
}

// Base units: metre, gram, byte.
var linear = []Unit{
	unit(Length, "mm", "Millimeters", "0.001"),
	unit(Length, "cm", "Centimeters", "0.01"),
	unit(Length, "m", "Meters", "1"),
	unit(Length, "km", "Kilometers", "1000"),
	unit(Length, "in", "Inches", "0.0254"),
	unit(Length, "ft", "Feet", "0.3048"),
	unit(Length, "yd", "Yards", "0.9144"),
	unit(Length, "mi", "Miles", "1609.344"),
	unit(Length, "nmi", "Nautical miles", "1852"),

	unit(Mass, "mg", "Milligrams", "0.001"),
	unit(Mass, "g", "Grams", "1"),
	unit(Mass, "kg", "Kilograms", "1000"),
	unit(Mass, "t", "Metric tons", "1000000"),
	unit(Mass, "oz", "Ounces", "28.349523125"),
	unit(Mass, "lb", "Pounds", "453.59237"),
	unit(Mass, "st", "Stones", "6350.29318"),

	unit(DataStorage, "B", "Bytes", "1"),
	unit(DataStorage, "KB", "Kilobytes", "1000"),
	unit(DataStorage, "MB", "Megabytes", "1000000"),
	unit(DataStorage, "GB", "Gigabytes", "1000000000"),
	unit(DataStorage, "TB", "Terabytes", "1000000000000"),
	unit(DataStorage, "KiB", "Kibibytes", "1024"),
	unit(DataStorage, "MiB", "Mebibytes", "1048576"),
	unit(DataStorage, "GiB", "Gibibytes", "1073741824"),
	unit(DataStorage, "TiB", "Tebibytes", "1099511627776"),
}

var temperatures = []Unit{
	{Symbol: "C", Name: "Celsius", Family: Temperature},
	{Symbol: "F", Name: "Fahrenheit", Family: Temperature},
	{Symbol: "K", Name: "Kelvin", Family: Temperature},
}

// Lookup returns the unit with the given symbol in family.
func Lookup(family Family, symbol string) (Unit, bool) {
	for _, u := range List(family) {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// List returns the units of a family in display order.
func List(family Family) []Unit {
	if family == Temperature {
		return append([]Unit(nil), temperatures...)
	}
	var out []Unit
	for _, u := range linear {
		if u.Family == family {
			out = append(out, u)
		}
	}
	return out
}

// Convert converts value between two units of the same family. The boolean
// is false when either symbol is unknown for the family.
func Convert(family Family, value float64, from, to string) (float64, bool) {
	if family == Temperature {
		return ConvertTemperature(value, from, to)
	}
	src, ok := Lookup(family, from)
	if !ok {
		return 0, false
	}
	dst, ok := Lookup(family, to)
	if !ok {
		return 0, false
	}
	out, _ := decimal.NewFromFloat(value).Mul(src.perBase).Div(dst.perBase).Float64()
	return out, true
}

// ConvertTemperature converts between Celsius, Fahrenheit and Kelvin.
func ConvertTemperature(value float64, from, to string) (float64, bool) {
	v := decimal.NewFromFloat(value)
	nine, five := decimal.NewFromInt(9), decimal.NewFromInt(5)
	thirtyTwo := decimal.NewFromInt(32)
	kelvinOffset := decimal.RequireFromString("273.15")

	var celsius decimal.Decimal
	switch from {
	case "C":
		celsius = v
	case "F":
		celsius = v.Sub(thirtyTwo).Mul(five).Div(nine)
	case "K":
		celsius = v.Sub(kelvinOffset)
	default:
		return 0, false
	}

	var out decimal.Decimal
	switch to {
	case "C":
		out = celsius
	case "F":
		out = celsius.Mul(nine).Div(five).Add(thirtyTwo)
	case "K":
		out = celsius.Add(kelvinOffset)
	default:
		return 0, false
	}
	f, _ := out.Float64()
	return f, true
}
