package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
	"github.com/iwvelando/calculator-catalog/pkg/datetime"
)

// ValidateInputs checks raw field values against a calculator's fields and
// returns human-readable warnings. Calculations never fail on bad input, so
// these are advisory: a flagged value falls back to a default or is clamped.
func ValidateInputs(def calculator.Definition, values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []string
	for _, key := range keys {
		raw := values[key]
		field, ok := def.Field(key)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s has no field %q", def.Slug, key))
			continue
		}
		if w := validateField(field, raw); w != "" {
			warnings = append(warnings, fmt.Sprintf("%s field %q: %s", def.Slug, key, w))
		}
	}
	return warnings
}

func validateField(field calculator.Field, raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch field.Type {
	case calculator.FieldNumber:
		v, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Sprintf("%q is not a number, the default %s applies", raw, field.Default)
		}
		if field.Min != nil && v < *field.Min {
			return fmt.Sprintf("%v is below the minimum %v", v, *field.Min)
		}
		if field.Max != nil && v > *field.Max {
			return fmt.Sprintf("%v is above the maximum %v", v, *field.Max)
		}
	case calculator.FieldSelect:
		for _, o := range field.Options {
			if o.Value == trimmed {
				return ""
			}
		}
		return fmt.Sprintf("%q is not one of the options, %s applies", raw, field.Default)
	case calculator.FieldDate:
		if _, ok := datetime.ParseDate(trimmed); !ok {
			return fmt.Sprintf("%q is not a YYYY-MM-DD date", raw)
		}
	case calculator.FieldDateTime:
		if _, ok := datetime.ParseDateTime(trimmed); !ok {
			return fmt.Sprintf("%q is not a YYYY-MM-DDTHH:MM date and time", raw)
		}
	case calculator.FieldTime:
		if _, ok := datetime.ParseTimeToMinutes(trimmed); !ok {
			return fmt.Sprintf("%q is not an HH:MM time", raw)
		}
	}
	return ""
}
