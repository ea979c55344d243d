package domain

import (
	"math"
	"strconv"
)

// BMI classification per WHO thresholds.
const (
	BMIUnderweight = "Underweight"
	BMIHealthy     = "Healthy weight"
	BMIOverweight  = "Overweight"
	BMIObesity     = "Obesity"
)

const (
	// Heights above this are assumed to be centimeters; at or below, meters.
	// Disambiguates "170" vs "1.70" without a unit field.
	heightMetersMax = 3

	defaultAge = 25

	// Light/moderate activity multiplier applied to the basal rate.
	activityFactor = 1.4
)

// NormalizeHeight converts a height given in either centimeters or meters
// to meters, using the >3 heuristic above.
func NormalizeHeight(height float64) float64 {
	if height > heightMetersMax {
		return height / 100
	}
	return height
}

// ComputeBMI returns weight (kg) divided by normalized height (m) squared.
// Inputs must be strictly positive; callers gate on that.
func ComputeBMI(weightKg, height float64) float64 {
	m := NormalizeHeight(height)
	return weightKg / (m * m)
}

// FormatBMI renders a BMI value with one fractional digit, the form it is
// stored and displayed in.
func FormatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

// ClassifyBMI maps an unrounded BMI value onto its WHO category.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMIHealthy
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObesity
	}
}

// DailyCalories estimates daily caloric needs from a unisex simplification
// of the Harris-Benedict basal-metabolic-rate formula:
//
//	bmr = 10*weight_kg + 6.25*height_cm - 5*age
//
// The sex-dependent constant is deliberately omitted. Age defaults to 25
// when not provided. The basal rate is scaled by the light/moderate
// activity factor and rounded to the nearest integer.
func DailyCalories(weightKg, height float64, age int) int {
	heightCm := NormalizeHeight(height) * 100
	if age <= 0 {
		age = defaultAge
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	return int(math.Round(bmr * activityFactor))
}
