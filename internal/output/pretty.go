package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
	"github.com/iwvelando/calculator-catalog/pkg/format"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Faint(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func reportPretty(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Definition.Title))
	b.WriteString("\n")

	if len(r.Definition.Fields) > 0 {
		inputs := newTable("Input", "Value")
		for _, f := range r.Definition.Fields {
			inputs.Row(f.Label, r.Inputs[f.Key])
		}
		b.WriteString(inputs.Render())
		b.WriteString("\n")
	}

	results := newTable("Result", "Value")
	for _, res := range r.Output.Results {
		results.Row(res.Label, format.Result(res))
	}
	b.WriteString(results.Render())
	b.WriteString("\n")

	if t := r.Output.Table; t != nil {
		b.WriteString(sectionStyle.Render(t.Title))
		b.WriteString("\n")
		b.WriteString(renderTable(t))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(t *calculator.Table) string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	out := newTable(headers...)
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cells[i] = format.Value(c.Format, row[c.Key])
		}
		out.Row(cells...)
	}
	return out.Render()
}

func definitionPretty(w io.Writer, def calculator.Definition) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(def.Title), subtleStyle.Render("("+def.Slug+")"))
	if def.Description != "" {
		b.WriteString(def.Description)
		b.WriteString("\n")
	}

	fields := newTable("Key", "Label", "Type", "Default", "Range", "Options")
	for _, f := range def.Fields {
		fields.Row(f.Key, f.Label, string(f.Type), f.Default, fieldRange(f), fieldOptions(f))
	}
	b.WriteString(fields.Render())
	b.WriteString("\n")
	for _, f := range def.Fields {
		if f.Help != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.Key, subtleStyle.Render(f.Help))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func fieldRange(f calculator.Field) string {
	if f.Min == nil && f.Max == nil {
		return ""
	}
	lo, hi := "", ""
	if f.Min != nil {
		lo = format.Number(*f.Min)
	}
	if f.Max != nil {
		hi = format.Number(*f.Max)
	}
	s := lo + " .. " + hi
	if f.Step != nil {
		s += " step " + format.Number(*f.Step)
	}
	return s
}

func fieldOptions(f calculator.Field) string {
	values := make([]string, len(f.Options))
	for i, o := range f.Options {
		values[i] = o.Value
	}
	return strings.Join(values, ", ")
}

func catalogPretty(w io.Writer, defs []calculator.Definition) error {
	byCategory := map[calculator.Category][]calculator.Definition{}
	var categories []string
	for _, def := range defs {
		if _, seen := byCategory[def.Category]; !seen {
			categories = append(categories, string(def.Category))
		}
		byCategory[def.Category] = append(byCategory[def.Category], def)
	}

	var b strings.Builder
	for _, c := range categories {
		b.WriteString(sectionStyle.Render(c))
		b.WriteString("\n")
		t := newTable("Slug", "Title")
		for _, def := range byCategory[calculator.Category(c)] {
			t.Row(def.Slug, def.Title)
		}
		b.WriteString(t.Render())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d calculators\n", len(defs))

	_, err := io.WriteString(w, b.String())
	return err
}
