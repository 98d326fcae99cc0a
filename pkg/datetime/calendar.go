package datetime

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
)

// utcMidnight drops the clock and zone of t, keeping its calendar date.
func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiffDays returns the number of calendar days from start to end. Both are
// normalized to UTC midnight first so daylight-saving shifts in the caller's
// zone cannot add or lose a day. Unix seconds are used rather than
// time.Duration, which saturates after about 292 years.
func DiffDays(start, end time.Time) int {
	const secondsPerDay = constants.HoursPerDay * 60 * constants.MinutesPerHour
	return int((utcMidnight(end).Unix() - utcMidnight(start).Unix()) / secondsPerDay)
}

// ISOWeek returns the ISO-8601 week-year and week number of t. The date is
// shifted to the Thursday of its Monday-based week and the week index is
// counted from January 1 of that Thursday's year.
func ISOWeek(t time.Time) (year, week int) {
	d := utcMidnight(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = constants.DaysPerWeek
	}
	thursday := d.AddDate(0, 0, 4-weekday)
	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return thursday.Year(), DiffDays(jan1, thursday)/constants.DaysPerWeek + 1
}

// BusinessDaysBetween counts Monday through Friday dates in the inclusive
// span [start, end]. Zero times and inverted ranges yield 0.
func BusinessDaysBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	s, e := utcMidnight(start), utcMidnight(end)
	if e.Before(s) {
		return 0
	}

	total := DiffDays(s, e) + 1
	count := (total / constants.DaysPerWeek) * 5
	for i := 0; i < total%constants.DaysPerWeek; i++ {
		switch s.AddDate(0, 0, i).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

// AddBusinessDays moves forward (or backward for negative n) by n business
// days, skipping Saturdays and Sundays.
func AddBusinessDays(start time.Time, n int) time.Time {
	d := utcMidnight(start)
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		d = d.AddDate(0, 0, step)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return d
}

// FormatDurationMinutes renders a minute count as "{h}h {m}m". Fractional
// minutes are floored; negative durations keep a leading "-".
func FormatDurationMinutes(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		minutes = 0
	}
	total := int64(math.Floor(minutes))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%dh %dm", sign, total/constants.MinutesPerHour, total%constants.MinutesPerHour)
}

// ConvertTimeZone takes a wall-clock time observed at fromOffsetHours from
// UTC and re-expresses the same instant at toOffsetHours. Offsets are fixed;
// no daylight-saving tables are consulted.
func ConvertTimeZone(wallClock time.Time, fromOffsetHours, toOffsetHours float64) time.Time {
	y, mo, d := wallClock.Date()
	h, mi, s := wallClock.Clock()
	from := time.FixedZone(OffsetLabel(fromOffsetHours), offsetSeconds(fromOffsetHours))
	to := time.FixedZone(OffsetLabel(toOffsetHours), offsetSeconds(toOffsetHours))
	return time.Date(y, mo, d, h, mi, s, 0, from).In(to)
}

func offsetSeconds(hours float64) int {
	return int(math.Round(hours * float64(time.Hour/time.Second)))
}

// OffsetLabel renders an hour offset as "UTC+05:30".
func OffsetLabel(hours float64) string {
	secs := offsetSeconds(hours)
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// AgeBetween returns the whole years, months and days elapsed from birth to
// asOf. Month arithmetic follows time.AddDate normalization. A birth after
// asOf yields zeros.
func AgeBetween(birth, asOf time.Time) (years, months, days int) {
	b, a := utcMidnight(birth), utcMidnight(asOf)
	if a.Before(b) {
		return 0, 0, 0
	}
	years = a.Year() - b.Year()
	if b.AddDate(years, 0, 0).After(a) {
		years--
	}
	anchor := b.AddDate(years, 0, 0)
	for months < constants.MonthsPerYear-1 && !anchor.AddDate(0, months+1, 0).After(a) {
		months++
	}
	days = DiffDays(anchor.AddDate(0, months, 0), a)
	return years, months, days
}
