package calculator

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
	"github.com/iwvelando/calculator-catalog/pkg/units"
)

// converter describes a unit converter over one family.
type converter struct {
	slug, title, description, icon string
	family                         units.Family
	value, from, to                string
}

func conversionCalculators() []Definition {
	converters := []converter{
		{"length-converter", "Length Converter", "Convert between metric and imperial lengths.", "ruler",
			units.Length, "1", "mi", "km"},
		{"weight-converter", "Weight Converter", "Convert between metric and imperial weights.", "weight",
			units.Mass, "1", "lb", "kg"},
		{"temperature-converter", "Temperature Converter", "Convert between Celsius, Fahrenheit and Kelvin.", "thermometer",
			units.Temperature, "100", "C", "F"},
		{"data-storage-converter", "Data Storage Converter", "Convert between decimal and binary storage units.", "hard-drive",
			units.DataStorage, "1", "GB", "MiB"},
	}
	defs := make([]Definition, 0, len(converters))
	for _, c := range converters {
		defs = append(defs, c.definition())
	}
	return defs
}

func (c converter) definition() Definition {
	var options []Option
	for _, u := range units.List(c.family) {
		options = append(options, Option{Value: u.Symbol, Label: u.Name})
	}
	return Definition{
		Slug:        c.slug,
		Title:       c.title,
		Description: c.description,
		Category:    CategoryConversion,
		Icon:        c.icon,
		Fields: []Field{
			number("value", "Value", c.value, -1e15, 1e15, 0.01),
			choice("from", "From", c.from, options...),
			choice("to", "To", c.to, options...),
		},
		Calculate: c.calculate,
	}
}

func (c converter) calculate(in Inputs) Output {
	value := in.Bounded("value", 0, -1e15, 1e15)
	from := in.String("from", c.from)
	to := in.String("to", c.to)
	if _, ok := units.Lookup(c.family, from); !ok {
		from = c.from
	}
	if _, ok := units.Lookup(c.family, to); !ok {
		to = c.to
	}

	converted, _ := units.Convert(c.family, value, from, to)
	converted = mathutil.RoundTo(converted, 6)
	unitFactor, _ := units.Convert(c.family, 1, from, to)

	results := []Result{
		Num("result", "Result", FormatNumber, converted),
		Text("formula", "Conversion", FormatText, fmt.Sprintf("%s %s = %s %s", trimFloat(value), from, trimFloat(converted), to)),
	}
	if c.family != units.Temperature {
		results = append(results, Num("factor", fmt.Sprintf("1 %s in %s", from, to), FormatNumber, mathutil.RoundTo(unitFactor, 10)))
	}
	return Output{Results: results}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
