package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile holds per-account personal data and the health metrics derived
// from it. ID always equals the owning account's ID (one-to-one).
//
// Weight is kilograms. Height is either centimeters or meters; the stored
// value is kept as entered and normalized only inside the metrics
// computation. Zero means "never provided" for Age, Weight, and Height.
type Profile struct {
	ID       string  `json:"id" bson:"_id"`
	Name     string  `json:"name" bson:"name"`
	Email    string  `json:"email" bson:"email"`
	Bio      string  `json:"bio,omitempty" bson:"bio,omitempty"`
	Phone    string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Location string  `json:"location,omitempty" bson:"location,omitempty"`
	Age      int     `json:"age,omitempty" bson:"age,omitempty"`
	Weight   float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	Height   float64 `json:"height,omitempty" bson:"height,omitempty"`

	// Derived fields. Present only once weight and height have both been
	// positive at some save; never proactively cleared afterwards.
	BMI           string `json:"bmi,omitempty" bson:"bmi,omitempty"`
	BMIStatus     string `json:"bmi_status,omitempty" bson:"bmi_status,omitempty"`
	DailyCalories int    `json:"daily_calories,omitempty" bson:"daily_calories,omitempty"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ProfileUpdate is a partial update: nil fields are left untouched by the
// merge, non-nil fields overwrite, explicit zero values included.
type ProfileUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Location *string  `json:"location,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// Apply merges the update onto the profile field by field.
func (p *Profile) Apply(u ProfileUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
}

// RecomputeMetrics applies the health-metrics rule to the profile. It runs
// only when weight and height are both strictly positive; otherwise the
// previously derived values are left as they are.
func (p *Profile) RecomputeMetrics() {
	if p.Weight <= 0 || p.Height <= 0 {
		return
	}
	bmi := ComputeBMI(p.Weight, p.Height)
	p.BMI = FormatBMI(bmi)
	p.BMIStatus = ClassifyBMI(bmi)
	p.DailyCalories = DailyCalories(p.Weight, p.Height, p.Age)
}
