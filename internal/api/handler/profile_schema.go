package handler

import "time"

// saveProfileRequest is a partial update: absent fields leave the stored
// value untouched, present fields overwrite it, explicit zeros included.
// A zero weight or height disables metric recomputation without clearing
// previously derived values.
type saveProfileRequest struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"    validate:"omitempty,email"`
	Bio      *string  `json:"bio,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Location *string  `json:"location,omitempty"`
	Age      *int     `json:"age,omitempty"      validate:"omitempty,gte=0"`
	Weight   *float64 `json:"weight,omitempty"   validate:"omitempty,gte=0"`
	Height   *float64 `json:"height,omitempty"   validate:"omitempty,gte=0"`
}

// profileResponse is the full profile view, derived fields included.
type profileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Bio           string    `json:"bio,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	Age           int       `json:"age,omitempty"`
	Weight        float64   `json:"weight,omitempty"`
	Height        float64   `json:"height,omitempty"`
	BMI           string    `json:"bmi,omitempty"`
	BMIStatus     string    `json:"bmi_status,omitempty"`
	DailyCalories int       `json:"daily_calories,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
