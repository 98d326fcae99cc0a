package calculator

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/datetime"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
)

const maxDayShift = 36500

// fractionalOffsets are the non-whole-hour UTC offsets in current use.
var fractionalOffsets = []float64{-9.5, -3.5, 3.5, 4.5, 5.5, 5.75, 6.5, 9.5, 10.5, 12.75}

func utcOffsetOptions() []Option {
	offsets := append([]float64(nil), fractionalOffsets...)
	for h := -12; h <= 14; h++ {
		offsets = append(offsets, float64(h))
	}
	sort.Float64s(offsets)
	options := make([]Option, 0, len(offsets))
	for _, h := range offsets {
		options = append(options, Option{Value: strconv.FormatFloat(h, 'f', -1, 64), Label: datetime.OffsetLabel(h)})
	}
	return options
}

func optionValues(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}

func dateTimeCalculators() []Definition {
	offsets := utcOffsetOptions()
	return []Definition{
		{
			Slug:        "date-difference-calculator",
			Title:       "Date Difference Calculator",
			Description: "Days, weeks and months between two dates.",
			Category:    CategoryDateTime,
			Icon:        "calendar",
			Fields: []Field{
				dateInput("startDate", "Start date", "2026-01-01"),
				dateInput("endDate", "End date", "2026-12-31"),
			},
			Calculate: calculateDateDifference,
		},
		{
			Slug:        "business-days-calculator",
			Title:       "Business Days Calculator",
			Description: "Working days between two dates, excluding weekends and optional holidays.",
			Category:    CategoryDateTime,
			Icon:        "briefcase",
			Fields: []Field{
				dateInput("startDate", "Start date", "2026-02-02"),
				dateInput("endDate", "End date", "2026-02-27"),
				number("holidays", "Holidays in range", "0", 0, 365, 1).
					WithHelp("Weekday holidays to subtract from the count."),
			},
			Calculate: calculateBusinessDays,
		},
		{
			Slug:        "week-number-calculator",
			Title:       "Week Number Calculator",
			Description: "ISO-8601 week number, week-year and week range of a date.",
			Category:    CategoryDateTime,
			Icon:        "calendar-days",
			Fields: []Field{
				dateInput("date", "Date", "2026-10-15"),
			},
			Calculate: calculateWeekNumber,
		},
		{
			Slug:        "time-duration-calculator",
			Title:       "Time Duration Calculator",
			Description: "Elapsed time between two clock times, wrapping past midnight.",
			Category:    CategoryDateTime,
			Icon:        "clock",
			Fields: []Field{
				timeInput("startTime", "Start time", "09:00"),
				timeInput("endTime", "End time", "17:30"),
				number("breakMinutes", "Break (minutes)", "30", 0, 1440, 5),
			},
			Calculate: calculateTimeDuration,
		},
		{
			Slug:        "time-zone-converter",
			Title:       "Time Zone Converter",
			Description: "Convert a date and time between fixed UTC offsets.",
			Category:    CategoryDateTime,
			Icon:        "globe",
			Fields: []Field{
				dateTimeInput("dateTime", "Date and time", "2026-10-15T09:00"),
				choice("fromOffset", "From", "-5", offsets...),
				choice("toOffset", "To", "0", offsets...),
			},
			Calculate: calculateTimeZone,
		},
		{
			Slug:        "age-calculator",
			Title:       "Age Calculator",
			Description: "Exact age in years, months and days, and the next birthday.",
			Category:    CategoryDateTime,
			Icon:        "cake",
			Fields: []Field{
				dateInput("birthDate", "Date of birth", "1990-06-15"),
				dateInput("asOf", "Age as of", "2026-10-15"),
			},
			Calculate: calculateAge,
		},
		{
			Slug:        "date-add-calculator",
			Title:       "Add to Date Calculator",
			Description: "Add or subtract days, weeks, months, years or business days.",
			Category:    CategoryDateTime,
			Icon:        "calendar-plus",
			Fields: []Field{
				dateInput("startDate", "Start date", "2026-10-15"),
				number("amount", "Amount", "30", -maxDayShift, maxDayShift, 1).
					WithHelp("Use a negative amount to subtract."),
				choice("unit", "Unit", "days",
					Option{"days", "Days"}, Option{"weeks", "Weeks"}, Option{"months", "Months"},
					Option{"years", "Years"}, Option{"businessDays", "Business days"}),
			},
			Calculate: calculateDateAdd,
		},
	}
}

func calculateDateDifference(in Inputs) Output {
	start := in.Date("startDate", "2026-01-01")
	end := in.Date("endDate", "2026-01-01")

	days := datetime.DiffDays(start, end)
	abs := days
	if abs < 0 {
		abs = -abs
		start, end = end, start
	}
	years, months, rem := datetime.AgeBetween(start, end)
	return Output{Results: []Result{
		count("days", "Days", days),
		Num("weeks", "Weeks", FormatNumber, mathutil.RoundTo(float64(abs)/constants.DaysPerWeek, 2)),
		count("months", "Whole months", years*constants.MonthsPerYear+months),
		Text("breakdown", "Years, months, days", FormatDuration, fmt.Sprintf("%d years %d months %d days", years, months, rem)),
		count("businessDays", "Business days", datetime.BusinessDaysBetween(start, end)),
	}}
}

func calculateBusinessDays(in Inputs) Output {
	start := in.Date("startDate", "2026-01-01")
	end := in.Date("endDate", "2026-01-01")
	holidays := in.Int("holidays", 0, 0, 365)

	business := datetime.BusinessDaysBetween(start, end)
	working := business - holidays
	if working < 0 {
		working = 0
	}
	total := 0
	if !end.Before(start) {
		total = datetime.DiffDays(start, end) + 1
	}
	return Output{Results: []Result{
		count("businessDays", "Business days", working),
		count("weekdays", "Weekdays before holidays", business),
		count("weekendDays", "Weekend days", total-business),
		count("calendarDays", "Calendar days (inclusive)", total),
	}}
}

func calculateWeekNumber(in Inputs) Output {
	d := in.Date("date", "2026-01-01")

	year, week := datetime.ISOWeek(d)
	offset := (int(d.Weekday()) + 6) % constants.DaysPerWeek
	monday := d.AddDate(0, 0, -offset)
	return Output{Results: []Result{
		count("isoWeek", "ISO week", week),
		count("isoYear", "ISO week-year", year),
		Text("weekLabel", "ISO week label", FormatText, fmt.Sprintf("%04d-W%02d", year, week)),
		count("dayOfYear", "Day of year", d.YearDay()),
		Text("weekday", "Day of week", FormatText, d.Weekday().String()),
		dateResult("weekStart", "Week starts (Monday)", monday),
		dateResult("weekEnd", "Week ends (Sunday)", monday.AddDate(0, 0, 6)),
	}}
}

func calculateTimeDuration(in Inputs) Output {
	start := in.Minutes("startTime", "00:00")
	end := in.Minutes("endTime", "00:00")
	breakMinutes := in.Bounded("breakMinutes", 0, 0, 1440)

	minutesPerDay := constants.MinutesPerHour * constants.HoursPerDay
	elapsed := end - start
	overnight := elapsed < 0
	if overnight {
		elapsed += minutesPerDay
	}
	net := float64(elapsed) - breakMinutes
	result := []Result{
		Text("duration", "Duration", FormatDuration, datetime.FormatDurationMinutes(net)),
		Num("decimalHours", "Decimal hours", FormatNumber, mathutil.RoundTo(net/constants.MinutesPerHour, 2)),
		Num("totalMinutes", "Total minutes", FormatInteger, math.Floor(net)),
	}
	if overnight {
		result = append(result, Text("note", "Note", FormatText, "End time is on the next day"))
	}
	return Output{Results: result}
}

func calculateTimeZone(in Inputs) Output {
	values := optionValues(utcOffsetOptions())
	wall := in.DateTime("dateTime", "2026-01-01T00:00")
	from := mathutil.ParseNumber(in.Choice("fromOffset", "0", values...), 0)
	to := mathutil.ParseNumber(in.Choice("toOffset", "0", values...), 0)

	converted := datetime.ConvertTimeZone(wall, from, to)
	dayShift := datetime.DiffDays(wall, converted)
	shift := "Same day"
	switch {
	case dayShift > 0:
		shift = "Next day"
	case dayShift < 0:
		shift = "Previous day"
	}
	return Output{Results: []Result{
		Text("converted", "Converted time", FormatText, converted.Format("2006-01-02 15:04")+" "+datetime.OffsetLabel(to)),
		Text("utc", "UTC", FormatText, converted.UTC().Format("2006-01-02 15:04")),
		Num("difference", "Offset difference (hours)", FormatNumber, to-from),
		Text("dayShift", "Day", FormatText, shift),
	}}
}

func calculateAge(in Inputs) Output {
	birth := in.Date("birthDate", "2000-01-01")
	asOf := in.Date("asOf", "2026-01-01")

	years, months, days := datetime.AgeBetween(birth, asOf)
	next := nextBirthday(birth, asOf)
	return Output{Results: []Result{
		count("years", "Age (years)", years),
		Text("exactAge", "Exact age", FormatDuration, fmt.Sprintf("%d years %d months %d days", years, months, days)),
		count("totalMonths", "Total months", years*constants.MonthsPerYear+months),
		count("totalDays", "Total days", max(0, datetime.DiffDays(birth, asOf))),
		dateResult("nextBirthday", "Next birthday", next),
		count("daysUntilBirthday", "Days until next birthday", datetime.DiffDays(asOf, next)),
	}}
}

// nextBirthday returns the first anniversary of birth on or after asOf. A
// February 29 birthday falls on March 1 in common years.
func nextBirthday(birth, asOf time.Time) time.Time {
	if asOf.Before(birth) {
		return birth
	}
	anniversary := func(year int) time.Time {
		return time.Date(year, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}
	next := anniversary(asOf.Year())
	if datetime.DiffDays(asOf, next) < 0 {
		next = anniversary(asOf.Year() + 1)
	}
	return next
}

func calculateDateAdd(in Inputs) Output {
	start := in.Date("startDate", "2026-01-01")
	amount := in.Int("amount", 0, -maxDayShift, maxDayShift)
	unit := in.Choice("unit", "days", "days", "weeks", "months", "years", "businessDays")

	var result time.Time
	switch unit {
	case "weeks":
		result = start.AddDate(0, 0, amount*constants.DaysPerWeek)
	case "months":
		result = start.AddDate(0, amount, 0)
	case "years":
		result = start.AddDate(amount, 0, 0)
	case "businessDays":
		result = datetime.AddBusinessDays(start, amount)
	default:
		result = start.AddDate(0, 0, amount)
	}
	return Output{Results: []Result{
		dateResult("result", "Resulting date", result),
		Text("weekday", "Day of week", FormatText, result.Weekday().String()),
		count("calendarDays", "Calendar days from start", datetime.DiffDays(start, result)),
	}}
}
