// Package datetime parses form date and time values and provides the
// calendar arithmetic the date calculators share. All times are UTC.
package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
)

// ParseDate parses a YYYY-MM-DD value into a UTC midnight time. The boolean
// is false when the value is empty or malformed.
func ParseDate(raw string) (time.Time, bool) {
	t, err := time.Parse(constants.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateTime parses a YYYY-MM-DDTHH:MM value as a wall-clock time in UTC.
// A bare date is accepted and taken as midnight.
func ParseDateTime(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range []string{constants.DateTimeLayout, "2006-01-02T15:04:05", "2006-01-02 15:04", constants.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimeToMinutes converts an HH:MM or HH:MM:SS value into minutes after
// midnight; seconds are validated and then dropped. The boolean is false when
// the value is malformed or out of range.
func ParseTimeToMinutes(raw string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	if len(parts) == 3 {
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, false
		}
	}
	return hours*constants.MinutesPerHour + minutes, true
}
