// Package calculator defines the calculator catalog: declarative calculator
// definitions, each a set of typed input fields plus a pure calculation
// function, and the read-only Registry that looks them up.
//
// Field values cross into the package as raw strings, exactly as a form
// control would report them. Parsing, clamping and unit conversion happen
// inside each calculation function, which is total: malformed input falls
// back to documented defaults instead of failing.
package calculator

import (
	"encoding/json"
	"fmt"
	"math"
)

// FieldType is the kind of input control a field renders as.
type FieldType string

const (
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldDateTime FieldType = "datetime"
	FieldTime     FieldType = "time"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field specifies one input control.
type Field struct {
	Key     string    `json:"key" yaml:"key"`
	Label   string    `json:"label" yaml:"label"`
	Type    FieldType `json:"type" yaml:"type"`
	Default string    `json:"default" yaml:"default"`
	Min     *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Step    *float64  `json:"step,omitempty" yaml:"step,omitempty"`
	Help    string    `json:"help,omitempty" yaml:"help,omitempty"`
	Options []Option  `json:"options,omitempty" yaml:"options,omitempty"`
}

// Category groups related calculators for navigation.
type Category string

const (
	CategoryFinance    Category = "finance"
	CategoryHealth     Category = "health"
	CategoryConversion Category = "conversion"
	CategoryDateTime   Category = "datetime"
	CategoryMath       Category = "math"
)

// Func maps raw field values to an Output. It must not panic on any input.
type Func func(in Inputs) Output

// Definition couples a calculator's fields to its calculation. Title,
// Description, Category and Icon are presentation metadata only.
type Definition struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Fields      []Field  `json:"fields" yaml:"fields"`
	Calculate   Func     `json:"-" yaml:"-"`
}

// Field returns the field with the given key.
func (d Definition) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns every field's default value.
func (d Definition) Defaults() Inputs {
	in := make(Inputs, len(d.Fields))
	for _, f := range d.Fields {
		in[f.Key] = f.Default
	}
	return in
}

// Run fills keys missing from values with field defaults and calculates.
// values is not modified.
func (d Definition) Run(values map[string]string) Output {
	in := d.Defaults()
	for k, v := range values {
		in[k] = v
	}
	return d.Calculate(in)
}

func (d Definition) clone() Definition {
	out := d
	out.Fields = make([]Field, len(d.Fields))
	for i, f := range d.Fields {
		f.Options = append([]Option(nil), f.Options...)
		f.Min, f.Max, f.Step = copyFloat(f.Min), copyFloat(f.Max), copyFloat(f.Step)
		out.Fields[i] = f
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Format tags how a result value should be displayed. The engine only tags;
// rendering belongs to the caller (see package format for a reference).
type Format string

const (
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
	FormatInteger  Format = "integer"
	FormatNumber   Format = "number"
	FormatDuration Format = "duration"
	FormatDate     Format = "date"
	FormatText     Format = "text"
)

// Numeric reports whether values with this format must be numbers.
func (f Format) Numeric() bool {
	switch f {
	case FormatCurrency, FormatPercent, FormatInteger, FormatNumber:
		return true
	}
	return false
}

// Result is one labeled output value. Exactly one of Number or Text is
// meaningful: numeric formats always carry Number, the others may carry Text.
type Result struct {
	Key    string
	Label  string
	Format Format
	Number float64
	Text   string
	IsText bool
}

// Value returns the result's value as a float64 or a string.
func (r Result) Value() any {
	if r.IsText {
		return r.Text
	}
	return r.Number
}

type resultView struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Value  any    `json:"value" yaml:"value"`
	Format Format `json:"format" yaml:"format"`
}

func (r Result) view() resultView {
	return resultView{Key: r.Key, Label: r.Label, Value: r.Value(), Format: r.Format}
}

// MarshalJSON encodes the result with a single "value" member.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

// MarshalYAML encodes the result with a single "value" member.
func (r Result) MarshalYAML() (interface{}, error) {
	return r.view(), nil
}

// Validate checks the numeric-format invariant.
func (r Result) Validate() error {
	if r.Format.Numeric() && r.IsText {
		return fmt.Errorf("result %q: %s format requires a numeric value", r.Key, r.Format)
	}
	if !r.IsText && (math.IsNaN(r.Number) || math.IsInf(r.Number, 0)) {
		return fmt.Errorf("result %q: value is not finite", r.Key)
	}
	return nil
}

// Num builds a numeric result. A NaN or infinite v is stored as 0 so the
// result always validates.
func Num(key, label string, format Format, v float64) Result {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return Result{Key: key, Label: label, Format: format, Number: v}
}

// Text builds a string result. Use FormatText, FormatDuration or FormatDate.
func Text(key, label string, format Format, s string) Result {
	return Result{Key: key, Label: label, Format: format, Text: s, IsText: true}
}

// Column describes one table column.
type Column struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Format Format `json:"format" yaml:"format"`
}

// Row maps column keys to cell values.
type Row map[string]float64

// Table is a tabular result such as an amortization schedule.
type Table struct {
	Title   string   `json:"title" yaml:"title"`
	Columns []Column `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Output is what a calculation returns.
type Output struct {
	Results []Result `json:"results" yaml:"results"`
	Table   *Table   `json:"table,omitempty" yaml:"table,omitempty"`
}

// Result returns the result with the given key.
func (o Output) Result(key string) (Result, bool) {
	for _, r := range o.Results {
		if r.Key == key {
			return r, true
		}
	}
	return Result{}, false
}

// Validate checks every result's invariant.
func (o Output) Validate() error {
	for _, r := range o.Results {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
