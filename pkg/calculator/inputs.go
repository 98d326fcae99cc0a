package calculator

import (
	"math"
	"strings"
	"time"

	"github.com/iwvelando/calculator-catalog/pkg/datetime"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
)

// Inputs holds raw field values keyed by field key, as the form reported
// them. Accessors never fail: they return the supplied fallback instead.
type Inputs map[string]string

// String returns the trimmed value for key, or fallback when empty.
func (in Inputs) String(key, fallback string) string {
	if v := strings.TrimSpace(in[key]); v != "" {
		return v
	}
	return fallback
}

// Number parses key as a number, or returns fallback.
func (in Inputs) Number(key string, fallback float64) float64 {
	return mathutil.ParseNumber(in[key], fallback)
}

// Bounded parses key and clamps it to [min, max].
func (in Inputs) Bounded(key string, fallback, min, max float64) float64 {
	return mathutil.Clamp(in.Number(key, fallback), min, max)
}

// Int parses key, clamps it to [min, max] and rounds to a whole number.
func (in Inputs) Int(key string, fallback, min, max float64) int {
	return int(math.Round(in.Bounded(key, fallback, min, max)))
}

// Date parses key as YYYY-MM-DD, or parses fallback when that fails.
func (in Inputs) Date(key, fallback string) time.Time {
	if t, ok := datetime.ParseDate(in[key]); ok {
		return t
	}
	t, _ := datetime.ParseDate(fallback)
	return t
}

// DateTime parses key as YYYY-MM-DDTHH:MM, or parses fallback.
func (in Inputs) DateTime(key, fallback string) time.Time {
	if t, ok := datetime.ParseDateTime(in[key]); ok {
		return t
	}
	t, _ := datetime.ParseDateTime(fallback)
	return t
}

// Minutes parses key as HH:MM into minutes after midnight, or parses fallback.
func (in Inputs) Minutes(key, fallback string) int {
	if m, ok := datetime.ParseTimeToMinutes(in[key]); ok {
		return m
	}
	m, _ := datetime.ParseTimeToMinutes(fallback)
	return m
}

// Choice returns key when it is one of allowed, otherwise fallback.
func (in Inputs) Choice(key, fallback string, allowed ...string) string {
	v := in.String(key, fallback)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}
