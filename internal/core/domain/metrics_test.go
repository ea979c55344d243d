package domain

import (
	"math"
	"testing"
)

func TestNormalizeHeight(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{170, 1.70},
		{1.70, 1.70},
		{3, 3},     // boundary: 3 is still treated as meters
		{3.01, 0.0301},
		{175.5, 1.755},
	}
	for _, tc := range cases {
		if got := NormalizeHeight(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("NormalizeHeight(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComputeBMI_CentimetersAndMetersAgree(t *testing.T) {
	cm := ComputeBMI(70, 170)
	m := ComputeBMI(70, 1.70)
	if math.Abs(cm-m) > 1e-9 {
		t.Fatalf("BMI from cm (%v) and m (%v) differ", cm, m)
	}
	want := 70 / (1.70 * 1.70)
	if math.Abs(cm-want) > 1e-9 {
		t.Fatalf("BMI = %v, want %v", cm, want)
	}
}

func TestFormatBMI(t *testing.T) {
	if got := FormatBMI(24.221453); got != "24.2" {
		t.Fatalf("FormatBMI = %q, want 24.2", got)
	}
	if got := FormatBMI(18.5); got != "18.5" {
		t.Fatalf("FormatBMI = %q, want 18.5", got)
	}
}

func TestClassifyBMI_Boundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{18.49, BMIUnderweight},
		{18.5, BMIHealthy},
		{24.99, BMIHealthy},
		{25.0, BMIOverweight},
		{29.99, BMIOverweight},
		{30.0, BMIObesity},
		{42.7, BMIObesity},
	}
	for _, tc := range cases {
		if got := ClassifyBMI(tc.bmi); got != tc.want {
			t.Fatalf("ClassifyBMI(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestDailyCalories(t *testing.T) {
	// bmr = 10*70 + 6.25*175 - 5*30 = 1643.75; round(1643.75 * 1.4) = 2301
	if got := DailyCalories(70, 175, 30); got != 2301 {
		t.Fatalf("DailyCalories(70, 175, 30) = %d, want 2301", got)
	}
	// same inputs with height in meters
	if got := DailyCalories(70, 1.75, 30); got != 2301 {
		t.Fatalf("DailyCalories(70, 1.75, 30) = %d, want 2301", got)
	}
}

func TestDailyCalories_AgeDefaultsTo25(t *testing.T) {
	want := DailyCalories(70, 175, 25)
	if got := DailyCalories(70, 175, 0); got != want {
		t.Fatalf("unset age: got %d, want %d", got, want)
	}
	if got := DailyCalories(70, 175, -4); got != want {
		t.Fatalf("negative age: got %d, want %d", got, want)
	}
}

func TestProfileRecomputeMetrics(t *testing.T) {
	p := &Profile{Weight: 70, Height: 170, Age: 30}
	p.RecomputeMetrics()
	if p.BMI != "24.2" {
		t.Fatalf("BMI = %q, want 24.2", p.BMI)
	}
	if p.BMIStatus != BMIHealthy {
		t.Fatalf("BMIStatus = %q, want %q", p.BMIStatus, BMIHealthy)
	}
	if p.DailyCalories != DailyCalories(70, 170, 30) {
		t.Fatalf("DailyCalories = %d", p.DailyCalories)
	}
}

func TestProfileRecomputeMetrics_SkippedWithoutInputs(t *testing.T) {
	p := &Profile{Weight: 70, BMI: "24.2", BMIStatus: BMIHealthy, DailyCalories: 2301}
	p.RecomputeMetrics()
	if p.BMI != "24.2" || p.BMIStatus != BMIHealthy || p.DailyCalories != 2301 {
		t.Fatalf("derived fields changed despite missing height: %+v", p)
	}

	p = &Profile{Weight: -1, Height: 170, BMI: "24.2"}
	p.RecomputeMetrics()
	if p.BMI != "24.2" {
		t.Fatalf("derived fields changed despite non-positive weight: %+v", p)
	}
}

func TestProfileApply_MergesOnlyProvidedFields(t *testing.T) {
	p := &Profile{Name: "Alice", Email: "alice@example.com", Weight: 70}
	bio := "lifting"
	zero := 0.0
	p.Apply(ProfileUpdate{Bio: &bio, Weight: &zero})
	if p.Name != "Alice" || p.Email != "alice@example.com" {
		t.Fatalf("untouched fields changed: %+v", p)
	}
	if p.Bio != "lifting" {
		t.Fatalf("bio not merged: %+v", p)
	}
	if p.Weight != 0 {
		t.Fatalf("explicit zero weight must overwrite, got %v", p.Weight)
	}
}
