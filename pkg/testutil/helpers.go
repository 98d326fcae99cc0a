// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
)

// FindResult finds a result by key in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []calculator.Result, key string) *calculator.Result {
	for i := range results {
		if results[i].Key == key {
			return &results[i]
		}
	}
	return nil
}

// MustNumber returns the numeric value of the result with key, failing the
// test when it is missing or textual.
func MustNumber(t testing.TB, out calculator.Output, key string) float64 {
	t.Helper()
	r := FindResult(out.Results, key)
	if r == nil {
		t.Fatalf("result %q not found", key)
		return 0
	}
	if r.IsText {
		t.Fatalf("result %q is text %q, expected a number", key, r.Text)
	}
	return r.Number
}

// MustText returns the text value of the result with key, failing the test
// when it is missing or numeric.
func MustText(t testing.TB, out calculator.Output, key string) string {
	t.Helper()
	r := FindResult(out.Results, key)
	if r == nil {
		t.Fatalf("result %q not found", key)
		return ""
	}
	if !r.IsText {
		t.Fatalf("result %q is number %v, expected text", key, r.Number)
	}
	return r.Text
}
