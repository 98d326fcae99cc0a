package calculator

import (
	"fmt"
	"math"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/loans"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
	"github.com/iwvelando/calculator-catalog/pkg/payoff"
)

const maxMoney = 1e12

func financeCalculators() []Definition {
	return []Definition{
		{
			Slug:        "mortgage-calculator",
			Title:       "Mortgage Calculator",
			Description: "Monthly payment, total interest and a full amortization schedule for a home loan.",
			Category:    CategoryFinance,
			Icon:        "home",
			Fields: []Field{
				number("homePrice", "Home price", "400000", 0, maxMoney, 1000),
				number("downPaymentPercent", "Down payment (%)", "20", 0, 100, 0.5),
				number("interestRate", "Interest rate (%)", "6.5", 0, 30, 0.01),
				choice("termYears", "Loan term", "30",
					Option{"10", "10 years"}, Option{"15", "15 years"}, Option{"20", "20 years"},
					Option{"25", "25 years"}, Option{"30", "30 years"}, Option{"40", "40 years"}),
				number("propertyTax", "Property tax (per year)", "4800", 0, maxMoney, 100),
				number("homeInsurance", "Home insurance (per year)", "1500", 0, maxMoney, 100),
				number("hoaMonthly", "HOA dues (per month)", "0", 0, maxMoney, 10),
				number("extraPayment", "Extra principal (per month)", "0", 0, maxMoney, 50).
					WithHelp("Paid on top of the scheduled payment every month."),
			},
			Calculate: calculateMortgage,
		},
		{
			Slug:        "loan-calculator",
			Title:       "Loan Calculator",
			Description: "Payment and amortization schedule for any fixed-rate installment loan.",
			Category:    CategoryFinance,
			Icon:        "banknote",
			Fields: []Field{
				number("loanAmount", "Loan amount", "25000", 0, maxMoney, 100),
				number("interestRate", "Interest rate (%)", "7", 0, 100, 0.01),
				number("termMonths", "Term (months)", "60", 1, 600, 1),
				number("extraPayment", "Extra payment (per month)", "0", 0, maxMoney, 10),
			},
			Calculate: calculateLoan,
		},
		{
			Slug:        "auto-loan-calculator",
			Title:       "Auto Loan Calculator",
			Description: "Financed amount, monthly payment and total cost of a vehicle purchase.",
			Category:    CategoryFinance,
			Icon:        "car",
			Fields: []Field{
				number("vehiclePrice", "Vehicle price", "35000", 0, maxMoney, 500),
				number("downPayment", "Down payment", "5000", 0, maxMoney, 500),
				number("tradeInValue", "Trade-in value", "0", 0, maxMoney, 500),
				number("salesTaxRate", "Sales tax (%)", "7", 0, 25, 0.1),
				number("interestRate", "Interest rate (%)", "6.5", 0, 40, 0.01),
				choice("termMonths", "Term", "60",
					Option{"36", "36 months"}, Option{"48", "48 months"}, Option{"60", "60 months"},
					Option{"72", "72 months"}, Option{"84", "84 months"}),
			},
			Calculate: calculateAutoLoan,
		},
		{
			Slug:        "compound-interest-calculator",
			Title:       "Compound Interest Calculator",
			Description: "Growth of an investment with regular monthly contributions.",
			Category:    CategoryFinance,
			Icon:        "trending-up",
			Fields: []Field{
				number("principal", "Initial deposit", "10000", 0, maxMoney, 100),
				number("monthlyContribution", "Monthly contribution", "200", 0, maxMoney, 10),
				number("annualRate", "Annual interest rate (%)", "7", -50, 100, 0.1),
				number("years", "Years", "10", 1, 100, 1),
				choice("compounding", "Compounding", "12",
					Option{"1", "Annually"}, Option{"4", "Quarterly"},
					Option{"12", "Monthly"}, Option{"365", "Daily"}),
			},
			Calculate: calculateCompoundInterest,
		},
		{
			Slug:        "simple-interest-calculator",
			Title:       "Simple Interest Calculator",
			Description: "Interest on a principal without compounding.",
			Category:    CategoryFinance,
			Icon:        "percent",
			Fields: []Field{
				number("principal", "Principal", "5000", 0, maxMoney, 100),
				number("annualRate", "Annual rate (%)", "5", 0, 100, 0.1),
				number("years", "Years", "3", 0, 100, 0.5),
			},
			Calculate: calculateSimpleInterest,
		},
		{
			Slug:        "savings-goal-calculator",
			Title:       "Savings Goal Calculator",
			Description: "Monthly saving needed to reach a target amount by a deadline.",
			Category:    CategoryFinance,
			Icon:        "piggy-bank",
			Fields: []Field{
				number("goalAmount", "Savings goal", "50000", 0, maxMoney, 500),
				number("currentSavings", "Current savings", "5000", 0, maxMoney, 100),
				number("annualRate", "Annual return (%)", "4", 0, 50, 0.1),
				number("years", "Years to goal", "5", 0.5, 100, 0.5),
			},
			Calculate: calculateSavingsGoal,
		},
		{
			Slug:        "debt-snowball-calculator",
			Title:       "Debt Snowball Calculator",
			Description: "Months and interest to clear your debts paying the smallest balance first.",
			Category:    CategoryFinance,
			Icon:        "snowflake",
			Fields: []Field{
				number("totalDebt", "Total debt", "15000", 0, maxMoney, 100),
				number("averageApr", "Average APR (%)", "19.9", 0, 100, 0.1),
				number("monthlyPayment", "Monthly payment", "500", 0, maxMoney, 10),
			},
			Calculate: calculateDebtSnowball,
		},
		{
			Slug:        "debt-avalanche-calculator",
			Title:       "Debt Avalanche Calculator",
			Description: "Months and interest to clear your debts paying the highest APR first.",
			Category:    CategoryFinance,
			Icon:        "mountain",
			Fields: []Field{
				number("totalDebt", "Total debt", "15000", 0, maxMoney, 100),
				number("averageApr", "Average APR (%)", "19.9", 0, 100, 0.1),
				number("monthlyPayment", "Monthly payment", "500", 0, maxMoney, 10),
				number("efficiencyBoost", "APR reduction from prioritizing (%)", "10", 0, 50, 1).
					WithHelp("Approximates targeting the highest-rate balance by discounting the blended APR."),
			},
			Calculate: calculateDebtAvalanche,
		},
		{
			Slug:        "roi-calculator",
			Title:       "ROI Calculator",
			Description: "Total and annualized return on an investment.",
			Category:    CategoryFinance,
			Icon:        "chart",
			Fields: []Field{
				number("initialInvestment", "Amount invested", "10000", 0, maxMoney, 100),
				number("finalValue", "Amount returned", "15000", 0, maxMoney, 100),
				number("years", "Investment length (years)", "3", 0, 100, 0.5),
			},
			Calculate: calculateROI,
		},
		{
			Slug:        "inflation-calculator",
			Title:       "Inflation Calculator",
			Description: "Future cost and purchasing power under steady inflation.",
			Category:    CategoryFinance,
			Icon:        "flame",
			Fields: []Field{
				number("amount", "Amount today", "1000", 0, maxMoney, 10),
				number("inflationRate", "Annual inflation (%)", "3", -20, 100, 0.1),
				number("years", "Years", "10", 0, 200, 1),
			},
			Calculate: calculateInflation,
		},
		{
			Slug:        "tip-calculator",
			Title:       "Tip Calculator",
			Description: "Tip and per-person share of a bill.",
			Category:    CategoryFinance,
			Icon:        "receipt",
			Fields: []Field{
				number("billAmount", "Bill amount", "85", 0, 1e7, 0.01),
				number("tipPercent", "Tip (%)", "18", 0, 100, 1),
				number("people", "Split between", "2", 1, 100, 1),
			},
			Calculate: calculateTip,
		},
		{
			Slug:        "discount-calculator",
			Title:       "Discount Calculator",
			Description: "Sale price after a percentage discount, with optional sales tax.",
			Category:    CategoryFinance,
			Icon:        "tag",
			Fields: []Field{
				number("originalPrice", "Original price", "120", 0, 1e9, 0.01),
				number("discountPercent", "Discount (%)", "25", 0, 100, 1),
				number("salesTaxRate", "Sales tax (%)", "0", 0, 25, 0.1),
			},
			Calculate: calculateDiscount,
		},
		{
			Slug:        "percentage-calculator",
			Title:       "Percentage Calculator",
			Description: "Percent of a number, percent ratio, and percent change.",
			Category:    CategoryFinance,
			Icon:        "percent",
			Fields: []Field{
				choice("mode", "Calculation", "percentOf",
					Option{"percentOf", "What is X% of Y?"},
					Option{"whatPercent", "X is what % of Y?"},
					Option{"change", "% change from X to Y"}),
				number("valueX", "X", "15", -maxMoney, maxMoney, 0.01),
				number("valueY", "Y", "200", -maxMoney, maxMoney, 0.01),
			},
			Calculate: calculatePercentage,
		},
		{
			Slug:        "salary-to-hourly-calculator",
			Title:       "Salary to Hourly Calculator",
			Description: "Convert an annual salary into hourly, daily, weekly and monthly pay.",
			Category:    CategoryFinance,
			Icon:        "clock",
			Fields: []Field{
				number("annualSalary", "Annual salary", "60000", 0, 1e9, 1000),
				number("hoursPerWeek", "Hours per week", "40", 1, 168, 0.5),
				number("weeksPerYear", "Weeks worked per year", "52", 1, 52, 1),
			},
			Calculate: calculateSalaryToHourly,
		},
	}
}

func calculateMortgage(in Inputs) Output {
	price := in.Bounded("homePrice", 0, 0, maxMoney)
	downPercent := in.Bounded("downPaymentPercent", 0, 0, 100)
	rate := in.Bounded("interestRate", 0, 0, 30)
	months := in.Int("termYears", 30, 1, 50) * constants.MonthsPerYear
	extra := in.Bounded("extraPayment", 0, 0, maxMoney)
	monthlyTax := in.Bounded("propertyTax", 0, 0, maxMoney) / constants.MonthsPerYear
	monthlyInsurance := in.Bounded("homeInsurance", 0, 0, maxMoney) / constants.MonthsPerYear
	hoa := in.Bounded("hoaMonthly", 0, 0, maxMoney)

	downPayment := mathutil.ApplyPercentage(price, downPercent)
	loanAmount := price - downPayment
	schedule := loans.CalculateAmortizationSchedule(loanAmount, rate, months, extra)
	totalMonthly := schedule.Payment + extra + monthlyTax + monthlyInsurance + hoa

	results := []Result{
		money("monthlyPayment", "Principal & interest", schedule.Payment),
		money("totalMonthly", "Total monthly payment", totalMonthly),
		money("loanAmount", "Loan amount", loanAmount),
		money("downPayment", "Down payment", downPayment),
		money("totalInterest", "Total interest", schedule.TotalInterest),
		money("totalPaid", "Total of payments", schedule.TotalPaid),
		count("payoffMonths", "Months to payoff", schedule.Months()),
		Text("payoffTime", "Time to payoff", FormatDuration, yearsMonths(schedule.Months())),
	}
	if extra > 0 {
		base := loans.CalculateAmortizationSchedule(loanAmount, rate, months, 0)
		results = append(results,
			money("interestSaved", "Interest saved by extra payments", base.TotalInterest-schedule.TotalInterest),
			count("monthsSaved", "Months saved", base.Months()-schedule.Months()),
		)
	}
	return Output{Results: results, Table: amortizationTable(schedule)}
}

func calculateLoan(in Inputs) Output {
	amount := in.Bounded("loanAmount", 0, 0, maxMoney)
	rate := in.Bounded("interestRate", 0, 0, 100)
	months := in.Int("termMonths", 12, 1, 600)
	extra := in.Bounded("extraPayment", 0, 0, maxMoney)

	schedule := loans.CalculateAmortizationSchedule(amount, rate, months, extra)
	return Output{
		Results: []Result{
			money("monthlyPayment", "Monthly payment", schedule.Payment),
			money("totalInterest", "Total interest", schedule.TotalInterest),
			money("totalPaid", "Total of payments", schedule.TotalPaid),
			count("payoffMonths", "Months to payoff", schedule.Months()),
			Text("payoffTime", "Time to payoff", FormatDuration, yearsMonths(schedule.Months())),
		},
		Table: amortizationTable(schedule),
	}
}

func calculateAutoLoan(in Inputs) Output {
	price := in.Bounded("vehiclePrice", 0, 0, maxMoney)
	down := in.Bounded("downPayment", 0, 0, maxMoney)
	tradeIn := in.Bounded("tradeInValue", 0, 0, maxMoney)
	taxRate := in.Bounded("salesTaxRate", 0, 0, 25)
	rate := in.Bounded("interestRate", 0, 0, 40)
	months := in.Int("termMonths", 60, 1, 120)

	// Most states tax the price net of the trade-in.
	salesTax := mathutil.ApplyPercentage(math.Max(0, price-tradeIn), taxRate)
	financed := math.Max(0, price+salesTax-down-tradeIn)
	schedule := loans.CalculateAmortizationSchedule(financed, rate, months, 0)

	return Output{
		Results: []Result{
			money("monthlyPayment", "Monthly payment", schedule.Payment),
			money("amountFinanced", "Amount financed", financed),
			money("salesTax", "Sales tax", salesTax),
			money("totalInterest", "Total interest", schedule.TotalInterest),
			money("totalCost", "Total cost", down+tradeIn+schedule.TotalPaid),
		},
		Table: amortizationTable(schedule),
	}
}

func calculateCompoundInterest(in Inputs) Output {
	principal := in.Bounded("principal", 0, 0, maxMoney)
	contribution := in.Bounded("monthlyContribution", 0, 0, maxMoney)
	rate := in.Bounded("annualRate", 0, -50, 100) / constants.PercentageMultiplier
	years := in.Int("years", 10, 1, 100)
	periods := in.Bounded("compounding", 12, 1, 365)

	// Contributions land at month end; the compounding frequency is folded
	// into an equivalent monthly growth factor.
	monthlyGrowth := math.Pow(1+rate/periods, periods/constants.MonthsPerYear)
	balance := principal
	contributed := principal
	table := &Table{
		Title: "Growth by year",
		Columns: []Column{
			{Key: "year", Label: "Year", Format: FormatInteger},
			{Key: "contributions", Label: "Total contributions", Format: FormatCurrency},
			{Key: "interest", Label: "Total interest", Format: FormatCurrency},
			{Key: "balance", Label: "Balance", Format: FormatCurrency},
		},
	}
	for year := 1; year <= years; year++ {
		for m := 0; m < constants.MonthsPerYear; m++ {
			balance = balance*monthlyGrowth + contribution
			contributed += contribution
		}
		table.Rows = append(table.Rows, Row{
			"year":          float64(year),
			"contributions": mathutil.Round(contributed),
			"interest":      mathutil.Round(balance - contributed),
			"balance":       mathutil.Round(balance),
		})
	}

	effective := (math.Pow(1+rate/periods, periods) - 1) * constants.PercentageMultiplier
	return Output{
		Results: []Result{
			money("futureValue", "Future value", balance),
			money("totalContributions", "Total contributions", contributed),
			money("totalInterest", "Interest earned", balance-contributed),
			percent("effectiveAnnualRate", "Effective annual rate", effective),
		},
		Table: table,
	}
}

func calculateSimpleInterest(in Inputs) Output {
	principal := in.Bounded("principal", 0, 0, maxMoney)
	rate := in.Bounded("annualRate", 0, 0, 100)
	years := in.Bounded("years", 0, 0, 100)

	interest := mathutil.ApplyPercentage(principal, rate) * years
	return Output{Results: []Result{
		money("interest", "Interest", interest),
		money("total", "Total amount", principal+interest),
		money("monthlyInterest", "Interest per month", mathutil.ApplyPercentage(principal, rate)/constants.MonthsPerYear),
	}}
}

func calculateSavingsGoal(in Inputs) Output {
	goal := in.Bounded("goalAmount", 0, 0, maxMoney)
	current := in.Bounded("currentSavings", 0, 0, maxMoney)
	r := mathutil.MonthlyRate(in.Bounded("annualRate", 0, 0, 50))
	months := int(math.Round(in.Bounded("years", 1, 0.5, 100) * constants.MonthsPerYear))
	if months < 1 {
		months = 1
	}

	growth := math.Pow(1+r, float64(months))
	grown := current * growth
	remaining := goal - grown
	monthly := 0.0
	status := "Current savings already reach the goal"
	if remaining > 0 {
		if r > 0 {
			monthly = remaining * r / (growth - 1)
		} else {
			monthly = remaining / float64(months)
		}
		status = fmt.Sprintf("Save for %s", yearsMonths(months))
	}
	contributions := monthly * float64(months)
	final := math.Max(goal, grown)

	return Output{Results: []Result{
		money("monthlyContribution", "Monthly savings needed", monthly),
		money("totalContributions", "Total you contribute", contributions),
		money("interestEarned", "Interest earned", final-current-contributions),
		money("finalBalance", "Balance at deadline", final),
		Text("status", "Status", FormatText, status),
	}}
}

func payoffResults(r payoff.Result) []Result {
	payoffTime := r.Status
	if r.Converged {
		payoffTime = yearsMonths(r.Months)
	}
	return []Result{
		count("months", "Months to debt free", r.Months),
		Text("payoffTime", "Time to debt free", FormatDuration, payoffTime),
		money("totalInterest", "Total interest", r.TotalInterest),
		money("totalPaid", "Total paid", r.TotalPaid),
		Text("status", "Status", FormatText, r.Status),
	}
}

func calculateDebtSnowball(in Inputs) Output {
	debt := in.Bounded("totalDebt", 0, 0, maxMoney)
	apr := in.Bounded("averageApr", 0, 0, 100)
	payment := in.Bounded("monthlyPayment", 0, 0, maxMoney)

	return Output{Results: payoffResults(payoff.SnowballPlan(debt, apr, payment))}
}

func calculateDebtAvalanche(in Inputs) Output {
	debt := in.Bounded("totalDebt", 0, 0, maxMoney)
	apr := in.Bounded("averageApr", 0, 0, 100)
	payment := in.Bounded("monthlyPayment", 0, 0, maxMoney)
	boost := in.Bounded("efficiencyBoost", 0, 0, 50)

	avalanche := payoff.AvalanchePlan(debt, apr, payment, boost)
	snowball := payoff.SnowballPlan(debt, apr, payment)
	results := payoffResults(avalanche)
	results = append(results, percent("effectiveApr", "Effective APR", avalanche.EffectiveAPR))

	interestSaved, monthsSaved := 0.0, 0
	if avalanche.Converged && snowball.Converged {
		interestSaved = snowball.TotalInterest - avalanche.TotalInterest
		monthsSaved = snowball.Months - avalanche.Months
	}
	results = append(results,
		money("interestSaved", "Interest saved vs. snowball", interestSaved),
		count("monthsSaved", "Months saved vs. snowball", monthsSaved),
	)
	return Output{Results: results}
}

func calculateROI(in Inputs) Output {
	invested := in.Bounded("initialInvestment", 0, 0, maxMoney)
	returned := in.Bounded("finalValue", 0, 0, maxMoney)
	years := in.Bounded("years", 0, 0, 100)

	gain := returned - invested
	roi := mathutil.PercentOf(gain, invested)
	annualized := 0.0
	if invested > 0 && years > 0 {
		annualized = (math.Pow(returned/invested, 1/years) - 1) * constants.PercentageMultiplier
	}
	return Output{Results: []Result{
		money("gain", "Investment gain", gain),
		percent("roi", "Return on investment", roi),
		percent("annualizedRoi", "Annualized return", annualized),
	}}
}

func calculateInflation(in Inputs) Output {
	amount := in.Bounded("amount", 0, 0, maxMoney)
	rate := in.Bounded("inflationRate", 0, -20, 100) / constants.PercentageMultiplier
	years := in.Bounded("years", 0, 0, 200)

	factor := math.Pow(1+rate, years)
	return Output{Results: []Result{
		money("futureCost", "Future cost", amount*factor),
		money("purchasingPower", "Future purchasing power", amount/factor),
		percent("cumulativeInflation", "Cumulative inflation", (factor-1)*constants.PercentageMultiplier),
	}}
}

func calculateTip(in Inputs) Output {
	bill := in.Bounded("billAmount", 0, 0, 1e7)
	tipPercent := in.Bounded("tipPercent", 0, 0, 100)
	people := float64(in.Int("people", 1, 1, 100))

	tip := mathutil.ApplyPercentage(bill, tipPercent)
	total := bill + tip
	return Output{Results: []Result{
		money("tip", "Tip", tip),
		money("total", "Total", total),
		money("perPerson", "Per person", total/people),
		money("tipPerPerson", "Tip per person", tip/people),
	}}
}

func calculateDiscount(in Inputs) Output {
	price := in.Bounded("originalPrice", 0, 0, 1e9)
	discount := in.Bounded("discountPercent", 0, 0, 100)
	taxRate := in.Bounded("salesTaxRate", 0, 0, 25)

	savings := mathutil.ApplyPercentage(price, discount)
	sale := price - savings
	tax := mathutil.ApplyPercentage(sale, taxRate)
	return Output{Results: []Result{
		money("salePrice", "Sale price", sale),
		money("savings", "You save", savings),
		money("tax", "Sales tax", tax),
		money("finalPrice", "Final price", sale+tax),
	}}
}

func calculatePercentage(in Inputs) Output {
	mode := in.Choice("mode", "percentOf", "percentOf", "whatPercent", "change")
	x := in.Bounded("valueX", 0, -maxMoney, maxMoney)
	y := in.Bounded("valueY", 0, -maxMoney, maxMoney)

	switch mode {
	case "whatPercent":
		p := mathutil.PercentOf(x, y)
		return Output{Results: []Result{
			percent("result", "Result", p),
			Text("explanation", "Explanation", FormatText, fmt.Sprintf("%g is %g%% of %g", x, mathutil.RoundTo(p, 4), y)),
		}}
	case "change":
		p := mathutil.PercentChange(x, y)
		direction := "increase"
		if p < 0 {
			direction = "decrease"
		}
		return Output{Results: []Result{
			percent("result", "Result", p),
			Num("difference", "Difference", FormatNumber, mathutil.RoundTo(y-x, 6)),
			Text("explanation", "Explanation", FormatText,
				fmt.Sprintf("%g to %g is a %g%% %s", x, y, mathutil.RoundTo(math.Abs(p), 4), direction)),
		}}
	}
	v := mathutil.ApplyPercentage(y, x)
	return Output{Results: []Result{
		Num("result", "Result", FormatNumber, mathutil.RoundTo(v, 6)),
		Text("explanation", "Explanation", FormatText, fmt.Sprintf("%g%% of %g is %g", x, y, mathutil.RoundTo(v, 6))),
	}}
}

func calculateSalaryToHourly(in Inputs) Output {
	salary := in.Bounded("annualSalary", 0, 0, 1e9)
	hours := in.Bounded("hoursPerWeek", 40, 1, 168)
	weeks := in.Bounded("weeksPerYear", 52, 1, 52)

	weekly := salary / weeks
	return Output{Results: []Result{
		money("hourly", "Hourly", weekly/hours),
		money("daily", "Daily (5-day week)", weekly/5),
		money("weekly", "Weekly", weekly),
		money("biweekly", "Biweekly", weekly*2),
		money("monthly", "Monthly", salary/constants.MonthsPerYear),
	}}
}
