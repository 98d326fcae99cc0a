package calculator

import (
	"fmt"
	"time"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/loans"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
)

// Catalog returns the built-in calculator definitions in display order.
// Each call returns fresh values.
func Catalog() []Definition {
	var defs []Definition
	defs = append(defs, financeCalculators()...)
	defs = append(defs, healthCalculators()...)
	defs = append(defs, conversionCalculators()...)
	defs = append(defs, dateTimeCalculators()...)
	defs = append(defs, mathCalculators()...)
	return defs
}

func f64(v float64) *float64 {
	return &v
}

func number(key, label, def string, min, max, step float64) Field {
	return Field{Key: key, Label: label, Type: FieldNumber, Default: def, Min: f64(min), Max: f64(max), Step: f64(step)}
}

func choice(key, label, def string, options ...Option) Field {
	return Field{Key: key, Label: label, Type: FieldSelect, Default: def, Options: options}
}

func dateInput(key, label, def string) Field {
	return Field{Key: key, Label: label, Type: FieldDate, Default: def}
}

func dateTimeInput(key, label, def string) Field {
	return Field{Key: key, Label: label, Type: FieldDateTime, Default: def}
}

func timeInput(key, label, def string) Field {
	return Field{Key: key, Label: label, Type: FieldTime, Default: def}
}

// WithHelp returns a copy of f carrying help text.
func (f Field) WithHelp(help string) Field {
	f.Help = help
	return f
}

func money(key, label string, v float64) Result {
	return Num(key, label, FormatCurrency, mathutil.Round(v))
}

func percent(key, label string, v float64) Result {
	return Num(key, label, FormatPercent, mathutil.RoundTo(v, 2))
}

func count(key, label string, v int) Result {
	return Num(key, label, FormatInteger, float64(v))
}

func dateResult(key, label string, t time.Time) Result {
	return Text(key, label, FormatDate, t.Format(constants.DateLayout))
}

// yearsMonths renders a month count as "2 years 3 months".
func yearsMonths(months int) string {
	y, m := months/constants.MonthsPerYear, months%constants.MonthsPerYear
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	switch {
	case y == 0:
		return plural(m, "month")
	case m == 0:
		return plural(y, "year")
	}
	return plural(y, "year") + " " + plural(m, "month")
}

var amortizationColumns = []Column{
	{Key: "period", Label: "Month", Format: FormatInteger},
	{Key: "payment", Label: "Payment", Format: FormatCurrency},
	{Key: "principal", Label: "Principal", Format: FormatCurrency},
	{Key: "interest", Label: "Interest", Format: FormatCurrency},
	{Key: "balance", Label: "Balance", Format: FormatCurrency},
}

func amortizationTable(schedule loans.Schedule) *Table {
	if len(schedule.Payments) == 0 {
		return nil
	}
	table := &Table{
		Title:   "Amortization schedule",
		Columns: append([]Column(nil), amortizationColumns...),
		Rows:    make([]Row, 0, len(schedule.Payments)),
	}
	for _, p := range schedule.Payments {
		table.Rows = append(table.Rows, Row{
			"period":    float64(p.Period),
			"payment":   p.Payment,
			"principal": p.Principal,
			"interest":  p.Interest,
			"balance":   p.RemainingPrincipal,
		})
	}
	return table
}
