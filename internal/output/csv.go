package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// reportCSV writes the results as key,label,value,format records. A table,
// when present, follows after a blank line with its column keys as header.
func reportCSV(w io.Writer, r Report) error {
	records := [][]string{{"key", "label", "value", "format"}}
	for _, res := range r.Output.Results {
		value := res.Text
		if !res.IsText {
			value = formatFloat(res.Number)
		}
		records = append(records, []string{res.Key, res.Label, value, string(res.Format)})
	}
	if err := writeCSV(w, records); err != nil {
		return err
	}

	t := r.Output.Table
	if t == nil {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Key
	}
	records = [][]string{header}
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cells[i] = formatFloat(row[c.Key])
		}
		records = append(records, cells)
	}
	return writeCSV(w, records)
}

func definitionCSV(w io.Writer, def calculator.Definition) error {
	records := [][]string{{"key", "label", "type", "default", "min", "max", "step", "options"}}
	optional := func(v *float64) string {
		if v == nil {
			return ""
		}
		return formatFloat(*v)
	}
	for _, f := range def.Fields {
		records = append(records, []string{
			f.Key, f.Label, string(f.Type), f.Default,
			optional(f.Min), optional(f.Max), optional(f.Step), fieldOptions(f),
		})
	}
	return writeCSV(w, records)
}

func catalogCSV(w io.Writer, defs []calculator.Definition) error {
	records := [][]string{{"slug", "title", "category", "description"}}
	for _, def := range defs {
		records = append(records, []string{def.Slug, def.Title, string(def.Category), def.Description})
	}
	return writeCSV(w, records)
}
