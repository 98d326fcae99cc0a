// Package constants provides shared constants for the calculator-catalog application.
package constants

// Date and time layouts used at the string input boundary and for date results.
const (
	// DateLayout is the format of date field values and date results.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the format of datetime field values (HTML datetime-local).
	DateTimeLayout = "2006-01-02T15:04"
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Simulation bounds. Every simulation loop is capped so degenerate input
// cannot keep it running.
const (
	// AmortizationSafetyPeriods is added to the loan term to bound the schedule.
	AmortizationSafetyPeriods = 600

	// AmortizationHardStopPeriods is the absolute bound beyond the loan term.
	AmortizationHardStopPeriods = 5000

	// PayoffMaxMonths bounds the debt payoff simulation (100 years).
	PayoffMaxMonths = 1200
)

// Calendar constants
const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	DaysPerWeek    = 7
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
