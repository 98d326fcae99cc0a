package calculator

import (
	"fmt"
	"math"

	"github.com/iwvelando/calculator-catalog/pkg/mathutil"
)

const maxOperand = 1e12

func mathCalculators() []Definition {
	return []Definition{
		{
			Slug:        "fraction-simplifier",
			Title:       "Fraction Simplifier",
			Description: "Reduce a fraction to lowest terms and show it as a mixed number and decimal.",
			Category:    CategoryMath,
			Icon:        "divide",
			Fields: []Field{
				number("numerator", "Numerator", "42", -maxOperand, maxOperand, 1),
				number("denominator", "Denominator", "56", -maxOperand, maxOperand, 1),
			},
			Calculate: calculateFraction,
		},
		{
			Slug:        "aspect-ratio-calculator",
			Title:       "Aspect Ratio Calculator",
			Description: "Simplified aspect ratio of a resolution and the height for a new width.",
			Category:    CategoryMath,
			Icon:        "monitor",
			Fields: []Field{
				number("width", "Width", "1920", 0, 100000, 1),
				number("height", "Height", "1080", 0, 100000, 1),
				number("newWidth", "New width", "1280", 0, 100000, 1),
			},
			Calculate: calculateAspectRatio,
		},
	}
}

func calculateFraction(in Inputs) Output {
	num := math.Round(in.Bounded("numerator", 0, -maxOperand, maxOperand))
	den := math.Round(in.Bounded("denominator", 1, -maxOperand, maxOperand))

	if den == 0 {
		return Output{Results: []Result{
			Text("simplified", "Simplified", FormatText, "Undefined"),
			Text("mixed", "Mixed number", FormatText, "Undefined"),
			Text("decimal", "Decimal", FormatText, "Undefined"),
		}}
	}
	// Keep the sign on the numerator.
	if den < 0 {
		num, den = -num, -den
	}
	g := float64(mathutil.GCD(num, den))
	n, d := int64(num/g), int64(den/g)

	simplified := fmt.Sprintf("%d/%d", n, d)
	if d == 1 {
		simplified = fmt.Sprintf("%d", n)
	}
	return Output{Results: []Result{
		Text("simplified", "Simplified", FormatText, simplified),
		Text("mixed", "Mixed number", FormatText, mixedNumber(n, d)),
		Num("decimal", "Decimal", FormatNumber, mathutil.RoundTo(num/den, 6)),
		count("gcd", "Greatest common divisor", int(g)),
	}}
}

func mixedNumber(n, d int64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	whole, rem := n/d, n%d
	switch {
	case rem == 0:
		return fmt.Sprintf("%s%d", sign, whole)
	case whole == 0:
		return fmt.Sprintf("%s%d/%d", sign, rem, d)
	}
	return fmt.Sprintf("%s%d %d/%d", sign, whole, rem, d)
}

func calculateAspectRatio(in Inputs) Output {
	width := math.Round(in.Bounded("width", 0, 0, 100000))
	height := math.Round(in.Bounded("height", 0, 0, 100000))
	newWidth := in.Bounded("newWidth", 0, 0, 100000)

	if width == 0 || height == 0 {
		return Output{Results: []Result{
			Text("ratio", "Aspect ratio", FormatText, "N/A"),
			Num("decimalRatio", "Decimal ratio", FormatNumber, 0),
			Num("newHeight", "New height", FormatNumber, 0),
		}}
	}
	g := float64(mathutil.GCD(width, height))
	return Output{Results: []Result{
		Text("ratio", "Aspect ratio", FormatText, fmt.Sprintf("%d:%d", int64(width/g), int64(height/g))),
		Num("decimalRatio", "Decimal ratio", FormatNumber, mathutil.RoundTo(width/height, 4)),
		Num("newHeight", "New height", FormatNumber, mathutil.RoundTo(newWidth*height/width, 2)),
	}}
}
