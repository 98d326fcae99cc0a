// Package payoff simulates paying down an aggregate debt balance with a fixed
// monthly budget, for the snowball and avalanche strategies.
package payoff

import (
	"fmt"
	"math"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
)

// StatusPaymentTooLow is reported when the payment cannot outpace interest.
const StatusPaymentTooLow = "Payment too low to reduce balance"

// Strategy names the ordering a payoff plan models.
type Strategy string

const (
	Snowball  Strategy = "snowball"  // smallest balance first
	Avalanche Strategy = "avalanche" // highest APR first
)

// Result is the outcome of one payoff simulation.
type Result struct {
	Strategy      Strategy
	EffectiveAPR  float64
	Months        int
	TotalInterest float64
	TotalPaid     float64
	Status        string
	// Converged is false when the payment was too low or the month cap was hit.
	Converged bool
}

// Simulate pays down totalDebt at aprPercent with payment each month until
// the balance is within a cent or 1200 months have passed.
//
// A payment that does not exceed the first month's interest can never reduce
// the balance; that case returns zero months and StatusPaymentTooLow instead
// of looping.
func Simulate(totalDebt, aprPercent, payment float64) Result {
	monthlyRate := mathutil.MonthlyRate(aprPercent)
	result := Result{EffectiveAPR: aprPercent}
	if totalDebt <= 0 || payment <= totalDebt*monthlyRate {
		result.Status = StatusPaymentTooLow
		return result
	}

	balance := totalDebt
	totalInterest := 0.0
	totalPaid := 0.0
	months := 0
	for !mathutil.Settled(balance) && months < constants.PayoffMaxMonths {
		interest := balance * monthlyRate
		principal := math.Max(0, payment-interest)
		if principal > balance {
			// final month only pays what is owed
			principal = balance
		}
		balance -= principal
		totalInterest += interest
		totalPaid += principal + interest
		months++
	}

	result.Months = months
	result.TotalInterest = mathutil.Round(totalInterest)
	result.TotalPaid = mathutil.Round(totalPaid)
	result.Converged = mathutil.Settled(balance)
	if result.Converged {
		result.Status = fmt.Sprintf("Debt free in %d months", months)
	} else {
		result.Status = fmt.Sprintf("Balance remains after %d months", months)
	}
	return result
}

// SnowballPlan simulates the snowball strategy on the blended APR.
func SnowballPlan(totalDebt, averageAPRPercent, payment float64) Result {
	r := Simulate(totalDebt, averageAPRPercent, payment)
	r.Strategy = Snowball
	return r
}

// AvalanchePlan simulates the avalanche strategy. Prioritizing the highest
// APR is approximated by discounting the blended APR by boostPercent; it is
// not a per-balance simulation.
func AvalanchePlan(totalDebt, averageAPRPercent, payment, boostPercent float64) Result {
	r := Simulate(totalDebt, EffectiveAPR(averageAPRPercent, boostPercent), payment)
	r.Strategy = Avalanche
	return r
}

// EffectiveAPR applies the avalanche efficiency boost to a blended APR.
func EffectiveAPR(averageAPRPercent, boostPercent float64) float64 {
	return averageAPRPercent * (1 - boostPercent/constants.PercentageMultiplier)
}
