package calculator

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwvelando/calculator-catalog/pkg/payoff"
)

var registry = Default(nil)

func run(t *testing.T, slug string, values map[string]string) Output {
	t.Helper()
	out, ok := registry.Calculate(slug, values)
	require.True(t, ok, "calculator %q not registered", slug)
	require.NoError(t, out.Validate())
	return out
}

func numberAt(t *testing.T, out Output, key string) float64 {
	t.Helper()
	r, ok := out.Result(key)
	require.True(t, ok, "missing result %q", key)
	require.False(t, r.IsText, "result %q is text", key)
	return r.Number
}

func textAt(t *testing.T, out Output, key string) string {
	t.Helper()
	r, ok := out.Result(key)
	require.True(t, ok, "missing result %q", key)
	require.True(t, r.IsText, "result %q is numeric", key)
	return r.Text
}

// Every calculator must be total: any string for any field yields a valid
// output and never panics.
func TestCalculatorsAreTotal(t *testing.T) {
	garbage := []string{"", "   ", "abc", "NaN", "Inf", "-Inf", "1e400", "-1e400", "1e308", "-1e308",
		"0", "-1", "1e-300", "99999999999999", "2026-13-45", "25:99", "--", "1,2,3"}

	for _, def := range registry.List() {
		def := def
		t.Run(def.Slug, func(t *testing.T) {
			require.NotEmpty(t, def.Fields)

			out := def.Run(nil)
			require.NoError(t, out.Validate())
			require.NotEmpty(t, out.Results)

			for _, g := range garbage {
				values := make(map[string]string, len(def.Fields))
				for _, f := range def.Fields {
					values[f.Key] = g
				}
				var got Output
				require.NotPanics(t, func() { got = def.Run(values) }, "input %q", g)
				assert.NoError(t, got.Validate(), "input %q", g)
				assert.NotEmpty(t, got.Results, "input %q", g)
			}
		})
	}
}

func TestCatalogResultFormats(t *testing.T) {
	for _, def := range registry.List() {
		out := def.Run(nil)
		seen := map[string]bool{}
		for _, r := range out.Results {
			assert.NotEmpty(t, r.Key, def.Slug)
			assert.NotEmpty(t, r.Label, "%s/%s", def.Slug, r.Key)
			assert.False(t, seen[r.Key], "%s has duplicate result %q", def.Slug, r.Key)
			seen[r.Key] = true
		}
		if out.Table != nil {
			for _, row := range out.Table.Rows {
				for _, c := range out.Table.Columns {
					_, ok := row[c.Key]
					assert.True(t, ok, "%s row missing column %q", def.Slug, c.Key)
				}
			}
		}
	}
}

func TestMortgageCalculator(t *testing.T) {
	out := run(t, "mortgage-calculator", nil)

	assert.Equal(t, 320000.0, numberAt(t, out, "loanAmount"))
	assert.Equal(t, 80000.0, numberAt(t, out, "downPayment"))
	assert.Equal(t, 2022.62, numberAt(t, out, "monthlyPayment"))
	assert.Equal(t, 2547.62, numberAt(t, out, "totalMonthly"))
	assert.Equal(t, 360.0, numberAt(t, out, "payoffMonths"))
	assert.Equal(t, "30 years", textAt(t, out, "payoffTime"))
	_, hasSaved := out.Result("interestSaved")
	assert.False(t, hasSaved)

	require.NotNil(t, out.Table)
	assert.Len(t, out.Table.Rows, 360)
	assert.Equal(t, 0.0, out.Table.Rows[359]["balance"])

	extra := run(t, "mortgage-calculator", map[string]string{"extraPayment": "500"})
	assert.Greater(t, numberAt(t, extra, "interestSaved"), 0.0)
	assert.Greater(t, numberAt(t, extra, "monthsSaved"), 0.0)
	assert.Less(t, len(extra.Table.Rows), 360)
}

func TestLoanCalculatorZeroInterest(t *testing.T) {
	out := run(t, "loan-calculator", map[string]string{
		"loanAmount":   "100000",
		"interestRate": "0",
		"termMonths":   "12",
	})

	assert.Equal(t, 8333.33, numberAt(t, out, "monthlyPayment"))
	assert.Equal(t, 0.0, numberAt(t, out, "totalInterest"))
	assert.Equal(t, 12.0, numberAt(t, out, "payoffMonths"))
	assert.Equal(t, "1 year", textAt(t, out, "payoffTime"))
	require.NotNil(t, out.Table)
	assert.Len(t, out.Table.Rows, 12)
	for _, row := range out.Table.Rows {
		assert.Equal(t, 0.0, row["interest"])
	}
}

func TestLoanCalculatorPaidOffWithoutTable(t *testing.T) {
	out := run(t, "loan-calculator", map[string]string{"loanAmount": "0"})

	assert.Equal(t, 0.0, numberAt(t, out, "monthlyPayment"))
	assert.Nil(t, out.Table)
}

func TestCompoundInterestCalculator(t *testing.T) {
	out := run(t, "compound-interest-calculator", map[string]string{
		"principal":           "10000",
		"monthlyContribution": "0",
		"annualRate":          "12",
		"years":               "1",
		"compounding":         "12",
	})

	assert.Equal(t, 11268.25, numberAt(t, out, "futureValue"))
	assert.Equal(t, 1268.25, numberAt(t, out, "totalInterest"))
	assert.Equal(t, 12.68, numberAt(t, out, "effectiveAnnualRate"))
	require.NotNil(t, out.Table)
	assert.Len(t, out.Table.Rows, 1)
}

func TestDebtPayoffCalculators(t *testing.T) {
	tooLow := map[string]string{"totalDebt": "1000", "averageApr": "24", "monthlyPayment": "10"}

	t.Run("snowball payment too low", func(t *testing.T) {
		out := run(t, "debt-snowball-calculator", tooLow)
		assert.Equal(t, 0.0, numberAt(t, out, "months"))
		assert.Equal(t, 0.0, numberAt(t, out, "totalInterest"))
		assert.Equal(t, payoff.StatusPaymentTooLow, textAt(t, out, "status"))
	})

	t.Run("avalanche payment too low", func(t *testing.T) {
		out := run(t, "debt-avalanche-calculator", tooLow)
		assert.Equal(t, 0.0, numberAt(t, out, "months"))
		assert.Equal(t, payoff.StatusPaymentTooLow, textAt(t, out, "status"))
		assert.Equal(t, 0.0, numberAt(t, out, "interestSaved"))
	})

	t.Run("avalanche beats snowball", func(t *testing.T) {
		snow := run(t, "debt-snowball-calculator", nil)
		ava := run(t, "debt-avalanche-calculator", nil)

		assert.Equal(t, 17.91, numberAt(t, ava, "effectiveApr"))
		assert.Less(t, numberAt(t, ava, "totalInterest"), numberAt(t, snow, "totalInterest"))
		assert.Greater(t, numberAt(t, ava, "interestSaved"), 0.0)
		assert.GreaterOrEqual(t, numberAt(t, ava, "monthsSaved"), 0.0)
	})
}

func TestEverydayFinanceCalculators(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		values   map[string]string
		key      string
		expected float64
	}{
		{name: "simple interest", slug: "simple-interest-calculator", values: nil, key: "interest", expected: 750},
		{name: "simple interest total", slug: "simple-interest-calculator", values: nil, key: "total", expected: 5750},
		{name: "tip", slug: "tip-calculator", values: nil, key: "tip", expected: 15.3},
		{name: "tip per person", slug: "tip-calculator", values: nil, key: "perPerson", expected: 50.15},
		{name: "discount sale price", slug: "discount-calculator", values: nil, key: "salePrice", expected: 90},
		{name: "discount savings", slug: "discount-calculator", values: nil, key: "savings", expected: 30},
		{name: "percent of", slug: "percentage-calculator", values: nil, key: "result", expected: 30},
		{
			name:     "what percent",
			slug:     "percentage-calculator",
			values:   map[string]string{"mode": "whatPercent", "valueX": "30", "valueY": "200"},
			key:      "result",
			expected: 15,
		},
		{
			name:     "percent change",
			slug:     "percentage-calculator",
			values:   map[string]string{"mode": "change", "valueX": "50", "valueY": "75"},
			key:      "result",
			expected: 50,
		},
		{name: "hourly wage", slug: "salary-to-hourly-calculator", values: nil, key: "hourly", expected: 28.85},
		{name: "monthly wage", slug: "salary-to-hourly-calculator", values: nil, key: "monthly", expected: 5000},
		{name: "roi", slug: "roi-calculator", values: nil, key: "roi", expected: 50},
		{
			name:     "inflation",
			slug:     "inflation-calculator",
			values:   map[string]string{"amount": "100", "inflationRate": "10", "years": "2"},
			key:      "futureCost",
			expected: 121,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.slug, tt.values)
			if got := numberAt(t, out, tt.key); got != tt.expected {
				t.Errorf("%s %s = %v, expected %v", tt.slug, tt.key, got, tt.expected)
			}
		})
	}
}

func TestSavingsGoalAlreadyReached(t *testing.T) {
	out := run(t, "savings-goal-calculator", map[string]string{"goalAmount": "1000", "currentSavings": "5000"})

	assert.Equal(t, 0.0, numberAt(t, out, "monthlyContribution"))
	assert.Equal(t, "Current savings already reach the goal", textAt(t, out, "status"))
}

func TestSavingsGoalFractionalYears(t *testing.T) {
	tests := []struct {
		years   string
		monthly float64
		status  string
	}{
		{"2.5", 100, "Save for 2 years 6 months"},
		{"0.5", 500, "Save for 6 months"},
		{"1", 250, "Save for 1 year"},
	}

	for _, tt := range tests {
		t.Run(tt.years+" years", func(t *testing.T) {
			out := run(t, "savings-goal-calculator", map[string]string{
				"goalAmount": "3000", "currentSavings": "0", "annualRate": "0", "years": tt.years,
			})
			assert.Equal(t, tt.monthly, numberAt(t, out, "monthlyContribution"))
			assert.Equal(t, 3000.0, numberAt(t, out, "totalContributions"))
			assert.Equal(t, tt.status, textAt(t, out, "status"))
		})
	}
}

// A value past a field's declared range must calculate exactly as the
// boundary itself, so the form's min and max are the bounds that apply.
func TestCalculationsClampToFieldRange(t *testing.T) {
	beyond := func(bound, direction float64) string {
		return strconv.FormatFloat(bound+direction*math.Max(1, math.Abs(bound)), 'g', -1, 64)
	}
	at := func(bound float64) string {
		return strconv.FormatFloat(bound, 'g', -1, 64)
	}

	for _, def := range registry.List() {
		for _, f := range def.Fields {
			if f.Type != FieldNumber || f.Min == nil || f.Max == nil {
				continue
			}
			t.Run(def.Slug+"/"+f.Key, func(t *testing.T) {
				atMax := run(t, def.Slug, map[string]string{f.Key: at(*f.Max)})
				aboveMax := run(t, def.Slug, map[string]string{f.Key: beyond(*f.Max, 1)})
				assert.Equal(t, atMax, aboveMax, "above max %v", *f.Max)

				atMin := run(t, def.Slug, map[string]string{f.Key: at(*f.Min)})
				belowMin := run(t, def.Slug, map[string]string{f.Key: beyond(*f.Min, -1)})
				assert.Equal(t, atMin, belowMin, "below min %v", *f.Min)
			})
		}
	}
}

func TestHealthCalculators(t *testing.T) {
	bmi := run(t, "bmi-calculator", nil)
	assert.Equal(t, 22.9, numberAt(t, bmi, "bmi"))
	assert.Equal(t, "Normal weight", textAt(t, bmi, "category"))

	imperial := run(t, "bmi-calculator", map[string]string{"unitSystem": "imperial", "weight": "154", "height": "69"})
	assert.Equal(t, 22.7, numberAt(t, imperial, "bmi"))
	assert.Contains(t, textAt(t, imperial, "healthyRange"), "lb")

	bmr := run(t, "bmr-calculator", nil)
	assert.Equal(t, 1649.0, numberAt(t, bmr, "bmr"))

	water := run(t, "water-intake-calculator", nil)
	assert.Equal(t, 2.66, numberAt(t, water, "liters"))
	assert.Equal(t, 11.0, numberAt(t, water, "glasses"))

	pace := run(t, "pace-calculator", nil)
	assert.Equal(t, "5:00 /km", textAt(t, pace, "pacePerKm"))
	assert.Equal(t, 12.0, numberAt(t, pace, "speedKph"))

	noDistance := run(t, "pace-calculator", map[string]string{"distance": "0"})
	assert.Equal(t, "N/A", textAt(t, noDistance, "pacePerKm"))
}

func TestDueDateCalculator(t *testing.T) {
	out := run(t, "due-date-calculator", nil)

	assert.Equal(t, "2026-10-08", textAt(t, out, "dueDate"))
	assert.Equal(t, "21 weeks 4 days", textAt(t, out, "gestationalAge"))
	assert.Equal(t, "Second trimester", textAt(t, out, "trimester"))
	assert.Equal(t, 129.0, numberAt(t, out, "daysRemaining"))

	longCycle := run(t, "due-date-calculator", map[string]string{"cycleLength": "35"})
	assert.Equal(t, "2026-10-15", textAt(t, longCycle, "dueDate"))
}

func TestConverters(t *testing.T) {
	tests := []struct {
		slug     string
		value    string
		from, to string
		expected float64
	}{
		{slug: "length-converter", value: "1", from: "mi", to: "km", expected: 1.609344},
		{slug: "length-converter", value: "12", from: "in", to: "ft", expected: 1},
		{slug: "weight-converter", value: "1", from: "lb", to: "kg", expected: 0.453592},
		{slug: "temperature-converter", value: "100", from: "C", to: "F", expected: 212},
		{slug: "temperature-converter", value: "0", from: "K", to: "C", expected: -273.15},
		{slug: "data-storage-converter", value: "1", from: "GiB", to: "MiB", expected: 1024},
		{slug: "data-storage-converter", value: "1", from: "GB", to: "MB", expected: 1000},
		// unknown units fall back to the converter defaults
		{slug: "length-converter", value: "1", from: "parsec", to: "km", expected: 1.609344},
	}

	for _, tt := range tests {
		t.Run(tt.slug+" "+tt.from+"->"+tt.to, func(t *testing.T) {
			out := run(t, tt.slug, map[string]string{"value": tt.value, "from": tt.from, "to": tt.to})
			assert.InDelta(t, tt.expected, numberAt(t, out, "result"), 1e-9)
		})
	}

	out := run(t, "temperature-converter", nil)
	assert.Equal(t, "100 C = 212 F", textAt(t, out, "formula"))
}

func TestWeekNumberCalculator(t *testing.T) {
	tests := []struct {
		date      string
		label     string
		weekStart string
	}{
		{date: "2026-01-01", label: "2026-W01", weekStart: "2025-12-29"},
		{date: "2026-12-31", label: "2026-W53", weekStart: "2026-12-28"},
		{date: "2027-01-01", label: "2026-W53", weekStart: "2026-12-28"},
		{date: "2026-10-15", label: "2026-W42", weekStart: "2026-10-12"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			out := run(t, "week-number-calculator", map[string]string{"date": tt.date})
			assert.Equal(t, tt.label, textAt(t, out, "weekLabel"))
			assert.Equal(t, tt.weekStart, textAt(t, out, "weekStart"))
		})
	}
}

func TestBusinessDaysCalculator(t *testing.T) {
	tests := []struct {
		name     string
		end      string
		holidays string
		business float64
		weekend  float64
	}{
		{name: "monday to friday", end: "2026-02-06", holidays: "0", business: 5, weekend: 0},
		{name: "straddles a weekend", end: "2026-02-09", holidays: "0", business: 6, weekend: 2},
		{name: "with a holiday", end: "2026-02-09", holidays: "1", business: 5, weekend: 2},
		{name: "inverted range", end: "2026-01-30", holidays: "0", business: 0, weekend: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, "business-days-calculator", map[string]string{
				"startDate": "2026-02-02",
				"endDate":   tt.end,
				"holidays":  tt.holidays,
			})
			assert.Equal(t, tt.business, numberAt(t, out, "businessDays"))
			assert.Equal(t, tt.weekend, numberAt(t, out, "weekendDays"))
		})
	}
}

func TestDateDifferenceCalculator(t *testing.T) {
	out := run(t, "date-difference-calculator", map[string]string{"startDate": "2026-03-01", "endDate": "2026-01-01"})

	assert.Equal(t, -59.0, numberAt(t, out, "days"))
	assert.Equal(t, 2.0, numberAt(t, out, "months"))
	assert.Equal(t, "0 years 2 months 0 days", textAt(t, out, "breakdown"))
}

func TestTimeDurationCalculator(t *testing.T) {
	overnight := run(t, "time-duration-calculator", map[string]string{"startTime": "22:00", "endTime": "06:00", "breakMinutes": "0"})
	assert.Equal(t, "8h 0m", textAt(t, overnight, "duration"))
	assert.Equal(t, 8.0, numberAt(t, overnight, "decimalHours"))
	_, hasNote := overnight.Result("note")
	assert.True(t, hasNote)

	day := run(t, "time-duration-calculator", nil)
	assert.Equal(t, "8h 0m", textAt(t, day, "duration"))
	assert.Equal(t, 480.0, numberAt(t, day, "totalMinutes"))

	negative := run(t, "time-duration-calculator", map[string]string{"startTime": "09:00", "endTime": "09:10", "breakMinutes": "30"})
	assert.Equal(t, "-0h 20m", textAt(t, negative, "duration"))
}

func TestTimeZoneConverter(t *testing.T) {
	out := run(t, "time-zone-converter", nil)
	assert.Equal(t, "2026-10-15 14:00 UTC+00:00", textAt(t, out, "converted"))
	assert.Equal(t, "Same day", textAt(t, out, "dayShift"))

	india := run(t, "time-zone-converter", map[string]string{
		"dateTime":   "2026-10-15T20:00",
		"fromOffset": "0",
		"toOffset":   "5.5",
	})
	assert.Equal(t, "2026-10-16 01:30 UTC+05:30", textAt(t, india, "converted"))
	assert.Equal(t, "Next day", textAt(t, india, "dayShift"))
	assert.Equal(t, 5.5, numberAt(t, india, "difference"))

	def, _ := registry.Lookup("time-zone-converter")
	from, _ := def.Field("fromOffset")
	assert.Equal(t, "UTC-12:00", from.Options[0].Label)
	assert.Equal(t, "UTC+14:00", from.Options[len(from.Options)-1].Label)
}

func TestAgeCalculator(t *testing.T) {
	out := run(t, "age-calculator", nil)

	assert.Equal(t, 36.0, numberAt(t, out, "years"))
	assert.Equal(t, "36 years 4 months 0 days", textAt(t, out, "exactAge"))
	assert.Equal(t, "2027-06-15", textAt(t, out, "nextBirthday"))
	assert.Equal(t, 243.0, numberAt(t, out, "daysUntilBirthday"))

	birthday := run(t, "age-calculator", map[string]string{"birthDate": "2000-10-15", "asOf": "2026-10-15"})
	assert.Equal(t, 0.0, numberAt(t, birthday, "daysUntilBirthday"))

	leap := run(t, "age-calculator", map[string]string{"birthDate": "2004-02-29", "asOf": "2026-01-10"})
	assert.Equal(t, "2026-03-01", textAt(t, leap, "nextBirthday"))
}

func TestDateAddCalculator(t *testing.T) {
	tests := []struct {
		start, amount, unit string
		expected            string
	}{
		{start: "2026-10-15", amount: "30", unit: "days", expected: "2026-11-14"},
		{start: "2026-10-15", amount: "-2", unit: "weeks", expected: "2026-10-01"},
		{start: "2026-01-31", amount: "1", unit: "months", expected: "2026-03-03"},
		{start: "2024-02-29", amount: "1", unit: "years", expected: "2025-03-01"},
		{start: "2026-02-06", amount: "1", unit: "businessDays", expected: "2026-02-09"},
		{start: "2026-02-09", amount: "-1", unit: "businessDays", expected: "2026-02-06"},
	}

	for _, tt := range tests {
		t.Run(tt.unit+" "+tt.amount, func(t *testing.T) {
			out := run(t, "date-add-calculator", map[string]string{"startDate": tt.start, "amount": tt.amount, "unit": tt.unit})
			assert.Equal(t, tt.expected, textAt(t, out, "result"))
		})
	}
}

func TestFractionSimplifier(t *testing.T) {
	tests := []struct {
		num, den   string
		simplified string
		mixed      string
	}{
		{num: "42", den: "56", simplified: "3/4", mixed: "3/4"},
		{num: "7", den: "-3", simplified: "-7/3", mixed: "-2 1/3"},
		{num: "10", den: "5", simplified: "2", mixed: "2"},
		{num: "0", den: "9", simplified: "0", mixed: "0"},
		{num: "5", den: "0", simplified: "Undefined", mixed: "Undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.num+"/"+tt.den, func(t *testing.T) {
			out := run(t, "fraction-simplifier", map[string]string{"numerator": tt.num, "denominator": tt.den})
			assert.Equal(t, tt.simplified, textAt(t, out, "simplified"))
			assert.Equal(t, tt.mixed, textAt(t, out, "mixed"))
		})
	}

	out := run(t, "fraction-simplifier", nil)
	assert.Equal(t, 0.75, numberAt(t, out, "decimal"))
	assert.Equal(t, 14.0, numberAt(t, out, "gcd"))
}

func TestAspectRatioCalculator(t *testing.T) {
	out := run(t, "aspect-ratio-calculator", nil)
	assert.Equal(t, "16:9", textAt(t, out, "ratio"))
	assert.Equal(t, 720.0, numberAt(t, out, "newHeight"))

	zero := run(t, "aspect-ratio-calculator", map[string]string{"height": "0"})
	assert.Equal(t, "N/A", textAt(t, zero, "ratio"))
}
