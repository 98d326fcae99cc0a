// Package format renders calculator result values for display. The engine
// only tags each value with a format; this package is the reference
// rendering used by the CLI.
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
)

// NumberPlaces is the number of decimal places generic numbers keep.
const NumberPlaces = 4

var printer = message.NewPrinter(language.English)

// Currency renders an amount with a dollar sign and thousands separators,
// e.g. "-$1,234.56".
func Currency(amount float64) string {
	if !finite(amount) {
		amount = 0
	}
	s := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 && s != "0.00" {
		return "-$" + s
	}
	return "$" + s
}

// Percent renders a percentage value with two decimals, e.g. "12.50%".
func Percent(v float64) string {
	if !finite(v) {
		v = 0
	}
	return printer.Sprintf("%.2f%%", v)
}

// Integer rounds v and renders it with thousands separators.
func Integer(v float64) string {
	if !finite(v) {
		v = 0
	}
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Number renders v with at most NumberPlaces decimals and no trailing zeros.
func Number(v float64) string {
	if !finite(v) {
		v = 0
	}
	return decimal.NewFromFloat(v).Round(NumberPlaces).String()
}

// Value renders a number according to a format tag. Non-numeric tags fall
// back to Number.
func Value(f calculator.Format, v float64) string {
	switch f {
	case calculator.FormatCurrency:
		return Currency(v)
	case calculator.FormatPercent:
		return Percent(v)
	case calculator.FormatInteger:
		return Integer(v)
	}
	return Number(v)
}

// Result renders a calculator result. Text values are returned as is.
func Result(r calculator.Result) string {
	if r.IsText {
		return r.Text
	}
	return Value(r.Format, r.Number)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
