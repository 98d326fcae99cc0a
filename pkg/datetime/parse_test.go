package datetime

import (
	"testing"
	"time"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		want   string
	}{
		{"Valid", "2026-02-02", true, "2026-02-02"},
		{"Surrounding whitespace", " 2026-02-02 ", true, "2026-02-02"},
		{"Empty", "", false, ""},
		{"Month out of range", "2026-13-01", false, ""},
		{"Not a date", "yesterday", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, expected %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got.Format(constants.DateLayout) != tt.want {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.raw, got.Format(constants.DateLayout), tt.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		want   string
	}{
		{"Datetime-local", "2026-03-08T09:30", true, "2026-03-08T09:30"},
		{"With seconds", "2026-03-08T09:30:15", true, "2026-03-08T09:30"},
		{"Space separated", "2026-03-08 09:30", true, "2026-03-08T09:30"},
		{"Bare date", "2026-03-08", true, "2026-03-08T00:00"},
		{"Garbage", "soon", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateTime(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseDateTime(%q) ok = %v, expected %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got.Format(constants.DateTimeLayout) != tt.want {
				t.Errorf("ParseDateTime(%q) = %s, expected %s", tt.raw, got.Format(constants.DateTimeLayout), tt.want)
			}
		})
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"7:05", 425, true},
		{"08:15:30", 495, true},
		{"08:15:59", 495, true},
		{"09:30:zz", 0, false},
		{"09:30:60", 0, false},
		{"09:30:", 0, false},
		{"09:30:00:00", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"1230", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTimeToMinutes(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseTimeToMinutes(%q) = (%d, %v), expected (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
