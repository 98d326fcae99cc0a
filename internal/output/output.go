// Package output writes calculator reports, definitions and the catalog in
// the supported output formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/validation"
)

// Report is one calculator run: the definition, the effective inputs after
// defaults were applied, and the calculated output.
type Report struct {
	Definition calculator.Definition
	Inputs     map[string]string
	Output     calculator.Output
}

type reportView struct {
	Calculator string              `json:"calculator" yaml:"calculator"`
	Title      string              `json:"title" yaml:"title"`
	Inputs     map[string]string   `json:"inputs" yaml:"inputs"`
	Results    []calculator.Result `json:"results" yaml:"results"`
	Table      *calculator.Table   `json:"table,omitempty" yaml:"table,omitempty"`
}

func (r Report) view() reportView {
	return reportView{
		Calculator: r.Definition.Slug,
		Title:      r.Definition.Title,
		Inputs:     r.Inputs,
		Results:    r.Output.Results,
		Table:      r.Output.Table,
	}
}

// WriteReport writes a calculator run in format.
func WriteReport(w io.Writer, format string, r Report) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case constants.OutputFormatCSV:
		return reportCSV(w, r)
	case constants.OutputFormatJSON:
		return encodeJSON(w, r.view())
	case constants.OutputFormatYAML:
		return encodeYAML(w, r.view())
	}
	return reportPretty(w, r)
}

// WriteDefinition writes one calculator's metadata and fields in format.
func WriteDefinition(w io.Writer, format string, def calculator.Definition) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case constants.OutputFormatCSV:
		return definitionCSV(w, def)
	case constants.OutputFormatJSON:
		return encodeJSON(w, def)
	case constants.OutputFormatYAML:
		return encodeYAML(w, def)
	}
	return definitionPretty(w, def)
}

// WriteCatalog writes a listing of definitions in format.
func WriteCatalog(w io.Writer, format string, defs []calculator.Definition) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case constants.OutputFormatCSV:
		return catalogCSV(w, defs)
	case constants.OutputFormatJSON:
		return encodeJSON(w, defs)
	case constants.OutputFormatYAML:
		return encodeYAML(w, defs)
	}
	return catalogPretty(w, defs)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}
