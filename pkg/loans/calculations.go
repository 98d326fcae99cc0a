// Package loans provides amortizing loan payment and schedule calculations.
package loans

import (
	"math"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given period of the schedule.
type Payment struct {
	Period             int
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// Schedule is a complete amortization run. Totals accumulate the unrounded
// per-period values and are rounded once; each Payment entry is rounded to
// cents on its own.
type Schedule struct {
	Payment       float64
	TotalInterest float64
	TotalPaid     float64
	Payments      []Payment
	// Capped is set when a safety bound ended the run with balance left.
	Capped bool
}

// Months returns the number of periods until payoff.
func (s Schedule) Months() int {
	return len(s.Payments)
}

// AmortizedMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard annuity formula.
func AmortizedMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	if periodicInterestRate <= 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}
	// Log1p/Expm1 keep (1+r)^n - 1 from cancelling to zero for tiny rates.
	growth := float64(termMonths) * math.Log1p(periodicInterestRate)
	payment := principal * periodicInterestRate * math.Exp(growth) / math.Expm1(growth)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return principal / float64(termMonths)
	}
	return payment
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * mathutil.MonthlyRate(annualInterestRate)
}

// CalculateAmortizationSchedule runs a loan to payoff with an optional extra
// principal payment every period.
func CalculateAmortizationSchedule(principal, annualInterestRate float64, termMonths int, extraPayment float64) Schedule {
	return NewAmortizationScheduleGenerator(nil).GenerateSchedule(principal, annualInterestRate, termMonths, extraPayment)
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan.
//
// Each period the interest accrues on the remaining balance and the payment
// plus extra principal reduces it; the principal portion never exceeds the
// balance so the final period pays off exactly. The run ends once the balance
// is within a cent, or after termMonths+600 periods.
func (g *AmortizationScheduleGenerator) GenerateSchedule(principal, annualInterestRate float64, termMonths int, extraPayment float64) Schedule {
	monthlyPayment := AmortizedMonthlyPayment(principal, annualInterestRate, termMonths)
	schedule := Schedule{Payment: monthlyPayment}
	if monthlyPayment <= 0 {
		return schedule
	}
	if extraPayment < 0 {
		extraPayment = 0
	}

	safetyLimit := termMonths + constants.AmortizationSafetyPeriods
	hardStop := termMonths + constants.AmortizationHardStopPeriods
	balance := principal
	totalInterest := 0.0
	totalPaid := 0.0

	for period := 1; !mathutil.Settled(balance) && period <= safetyLimit; period++ {
		if period > hardStop {
			break
		}

		interest := CalculateInterestPayment(balance, annualInterestRate)
		principalPortion := monthlyPayment - interest + extraPayment
		if principalPortion > balance {
			principalPortion = balance
		}
		payment := principalPortion + interest

		balance -= principalPortion
		if balance < 0 {
			balance = 0
		}
		totalInterest += interest
		totalPaid += payment

		schedule.Payments = append(schedule.Payments, Payment{
			Period:             period,
			Payment:            mathutil.Round(payment),
			Principal:          mathutil.Round(principalPortion),
			Interest:           mathutil.Round(interest),
			RemainingPrincipal: mathutil.Round(balance),
		})
	}

	if !mathutil.Settled(balance) {
		schedule.Capped = true
		g.logger.Debug("amortization schedule truncated by safety bound",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Int("periods", len(schedule.Payments)),
			zap.Float64("remaining", balance),
		)
	}

	schedule.TotalInterest = mathutil.Round(totalInterest)
	schedule.TotalPaid = mathutil.Round(totalPaid)
	return schedule
}
