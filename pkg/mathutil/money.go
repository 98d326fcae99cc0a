package mathutil

import (
	"math"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
)

// Round rounds to whole cents. Money results are rounded once, at the point
// they are reported.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Settled reports whether a remaining balance is within a cent of zero.
func Settled(balance float64) bool {
	return balance <= constants.CurrencyTolerance
}

// PercentOf returns part as a percentage of whole, or 0 when whole is 0.
func PercentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * constants.PercentageMultiplier
}

// PercentChange is the signed change from one value to another relative to
// the magnitude of the first.
func PercentChange(from, to float64) float64 {
	return PercentOf(to-from, math.Abs(from))
}

// ApplyPercentage returns pct percent of value.
func ApplyPercentage(value, pct float64) float64 {
	return value * pct / constants.PercentageMultiplier
}

// MonthlyRate converts an annual percentage rate into a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
