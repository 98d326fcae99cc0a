package calculator

import (
	"fmt"
	"math"

	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/datetime"
	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
	"github.com/iwvelando/calculator-catalog/pkg/units"
)

const (
	gestationDays    = 280
	standardCycle    = 28
	litersPerKg      = 0.033
	litersPerWorkout = 0.35
	hotClimateLiters = 0.5
	litersToFlOz     = 33.814
	glassLiters      = 0.25
	minPaceKm        = 0.001
)

var activityLevels = []Option{
	{"1.2", "Sedentary"},
	{"1.375", "Lightly active"},
	{"1.55", "Moderately active"},
	{"1.725", "Very active"},
	{"1.9", "Extra active"},
}

func healthCalculators() []Definition {
	return []Definition{
		{
			Slug:        "bmi-calculator",
			Title:       "BMI Calculator",
			Description: "Body mass index with its weight category and a healthy weight range.",
			Category:    CategoryHealth,
			Icon:        "scale",
			Fields: []Field{
				choice("unitSystem", "Units", "metric",
					Option{"metric", "Metric (kg, cm)"}, Option{"imperial", "Imperial (lb, in)"}),
				number("weight", "Weight", "70", 1, 1000, 0.1),
				number("height", "Height", "175", 1, 300, 0.1),
			},
			Calculate: calculateBMI,
		},
		{
			Slug:        "bmr-calculator",
			Title:       "BMR Calculator",
			Description: "Basal metabolic rate and daily calorie needs (Mifflin-St Jeor).",
			Category:    CategoryHealth,
			Icon:        "flame",
			Fields: []Field{
				choice("sex", "Sex", "male", Option{"male", "Male"}, Option{"female", "Female"}),
				number("age", "Age (years)", "30", 15, 100, 1),
				number("weightKg", "Weight (kg)", "70", 20, 400, 0.1),
				number("heightCm", "Height (cm)", "175", 100, 250, 0.1),
				choice("activity", "Activity level", "1.2", activityLevels...),
			},
			Calculate: calculateBMR,
		},
		{
			Slug:        "water-intake-calculator",
			Title:       "Water Intake Calculator",
			Description: "Recommended daily water intake from body weight, exercise and climate.",
			Category:    CategoryHealth,
			Icon:        "droplet",
			Fields: []Field{
				number("weightKg", "Weight (kg)", "70", 20, 400, 0.1),
				number("exerciseMinutes", "Exercise (minutes per day)", "30", 0, 600, 5),
				choice("climate", "Climate", "temperate",
					Option{"temperate", "Temperate"}, Option{"hot", "Hot or humid"}),
			},
			Calculate: calculateWaterIntake,
		},
		{
			Slug:        "pace-calculator",
			Title:       "Pace Calculator",
			Description: "Running pace and speed from a distance and finish time.",
			Category:    CategoryHealth,
			Icon:        "timer",
			Fields: []Field{
				number("distance", "Distance", "10", 0, 1000, 0.01),
				choice("distanceUnit", "Distance unit", "km",
					Option{"km", "Kilometers"}, Option{"mi", "Miles"}),
				number("hours", "Hours", "0", 0, 99, 1),
				number("minutes", "Minutes", "50", 0, 59, 1),
				number("seconds", "Seconds", "0", 0, 59, 1),
			},
			Calculate: calculatePace,
		},
		{
			Slug:        "due-date-calculator",
			Title:       "Due Date Calculator",
			Description: "Estimated due date and current gestational age from the last menstrual period.",
			Category:    CategoryHealth,
			Icon:        "baby",
			Fields: []Field{
				dateInput("lastPeriod", "First day of last period", "2026-01-01"),
				number("cycleLength", "Cycle length (days)", "28", 20, 45, 1),
				dateInput("asOf", "Calculate as of", "2026-06-01"),
			},
			Calculate: calculateDueDate,
		},
	}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	}
	return "Obese"
}

func calculateBMI(in Inputs) Output {
	system := in.Choice("unitSystem", "metric", "metric", "imperial")
	weight := in.Bounded("weight", 70, 1, 1000)
	height := in.Bounded("height", 175, 1, 300)

	weightKg, heightM := weight, height/100
	if system == "imperial" {
		weightKg, _ = units.Convert(units.Mass, weight, "lb", "kg")
		heightM, _ = units.Convert(units.Length, height, "in", "m")
	}
	bmi := weightKg / (heightM * heightM)

	lowKg, highKg := 18.5*heightM*heightM, 24.9*heightM*heightM
	weightUnit := "kg"
	if system == "imperial" {
		lowKg, _ = units.Convert(units.Mass, lowKg, "kg", "lb")
		highKg, _ = units.Convert(units.Mass, highKg, "kg", "lb")
		weightUnit = "lb"
	}
	return Output{Results: []Result{
		Num("bmi", "BMI", FormatNumber, mathutil.RoundTo(bmi, 1)),
		Text("category", "Category", FormatText, bmiCategory(bmi)),
		Text("healthyRange", "Healthy weight range", FormatText,
			fmt.Sprintf("%.1f - %.1f %s", lowKg, highKg, weightUnit)),
	}}
}

func calculateBMR(in Inputs) Output {
	sex := in.Choice("sex", "male", "male", "female")
	age := in.Bounded("age", 30, 15, 100)
	weight := in.Bounded("weightKg", 70, 20, 400)
	height := in.Bounded("heightCm", 175, 100, 250)
	activity := mathutil.ParseNumber(in.Choice("activity", "1.2", "1.2", "1.375", "1.55", "1.725", "1.9"), 1.2)

	bmr := 10*weight + 6.25*height - 5*age
	if sex == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}
	bmr = math.Max(0, bmr)
	tdee := bmr * activity
	return Output{Results: []Result{
		count("bmr", "BMR (calories/day)", int(math.Round(bmr))),
		count("maintenance", "Maintenance calories", int(math.Round(tdee))),
		count("mildLoss", "Mild weight loss (-0.25 kg/week)", int(math.Round(math.Max(0, tdee-250)))),
		count("weightLoss", "Weight loss (-0.5 kg/week)", int(math.Round(math.Max(0, tdee-500)))),
		count("weightGain", "Weight gain (+0.5 kg/week)", int(math.Round(tdee+500))),
	}}
}

func calculateWaterIntake(in Inputs) Output {
	weight := in.Bounded("weightKg", 70, 20, 400)
	exercise := in.Bounded("exerciseMinutes", 0, 0, 600)
	climate := in.Choice("climate", "temperate", "temperate", "hot")

	liters := weight*litersPerKg + exercise/30*litersPerWorkout
	if climate == "hot" {
		liters += hotClimateLiters
	}
	return Output{Results: []Result{
		Num("liters", "Liters per day", FormatNumber, mathutil.RoundTo(liters, 2)),
		Num("ounces", "Fluid ounces per day", FormatNumber, mathutil.RoundTo(liters*litersToFlOz, 1)),
		count("glasses", "250 ml glasses", int(math.Ceil(liters/glassLiters))),
	}}
}

// formatPace renders seconds as m:ss.
func formatPace(seconds float64) string {
	s := int(math.Round(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func calculatePace(in Inputs) Output {
	distance := in.Bounded("distance", 0, 0, 1000)
	unit := in.Choice("distanceUnit", "km", "km", "mi")
	totalSeconds := in.Bounded("hours", 0, 0, 99)*3600 +
		in.Bounded("minutes", 0, 0, 59)*60 +
		in.Bounded("seconds", 0, 0, 59)

	km, _ := units.Convert(units.Length, distance, unit, "km")
	miles, _ := units.Convert(units.Length, distance, unit, "mi")
	if km < minPaceKm || totalSeconds <= 0 {
		return Output{Results: []Result{
			Text("pacePerKm", "Pace per kilometer", FormatDuration, "N/A"),
			Text("pacePerMile", "Pace per mile", FormatDuration, "N/A"),
			Num("speedKph", "Speed (km/h)", FormatNumber, 0),
			Num("speedMph", "Speed (mph)", FormatNumber, 0),
		}}
	}
	hours := totalSeconds / 3600
	return Output{Results: []Result{
		Text("pacePerKm", "Pace per kilometer", FormatDuration, formatPace(totalSeconds/km)+" /km"),
		Text("pacePerMile", "Pace per mile", FormatDuration, formatPace(totalSeconds/miles)+" /mi"),
		Num("speedKph", "Speed (km/h)", FormatNumber, mathutil.RoundTo(km/hours, 2)),
		Num("speedMph", "Speed (mph)", FormatNumber, mathutil.RoundTo(miles/hours, 2)),
	}}
}

func trimester(weeks int) string {
	switch {
	case weeks < 0:
		return "Not yet pregnant"
	case weeks < 13:
		return "First trimester"
	case weeks < 27:
		return "Second trimester"
	case weeks <= 42:
		return "Third trimester"
	}
	return "Past due"
}

func calculateDueDate(in Inputs) Output {
	lmp := in.Date("lastPeriod", "2026-01-01")
	cycle := in.Int("cycleLength", standardCycle, 20, 45)
	asOf := in.Date("asOf", lmp.Format(constants.DateLayout))

	// Naegele's rule, shifted for cycles that differ from 28 days.
	due := lmp.AddDate(0, 0, gestationDays+cycle-standardCycle)
	conception := lmp.AddDate(0, 0, cycle-14)
	elapsed := datetime.DiffDays(lmp, asOf)
	weeks, days := elapsed/7, elapsed%7
	if elapsed < 0 {
		weeks, days = -1, 0
	}
	remaining := datetime.DiffDays(asOf, due)

	gestational := "N/A"
	if elapsed >= 0 {
		gestational = fmt.Sprintf("%d weeks %d days", weeks, days)
	}
	return Output{Results: []Result{
		dateResult("dueDate", "Estimated due date", due),
		dateResult("conception", "Estimated conception", conception),
		Text("gestationalAge", "Gestational age", FormatDuration, gestational),
		Text("trimester", "Trimester", FormatText, trimester(weeks)),
		count("daysRemaining", "Days until due date", remaining),
		Text("dueWeekday", "Due date weekday", FormatText, due.Weekday().String()),
	}}
}
