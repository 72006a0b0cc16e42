package model

import "time"

// Medical conditions recognised by the safety filter.
const (
	ConditionDiabetes      = "diabetes"
	ConditionBloodPressure = "blood-pressure"
	ConditionHeart         = "heart"
)

// Default daily limits applied when a profile leaves a limit unset.
const (
	DefaultCalorieLimit     = 2000
	DefaultSugarLimit       = 50
	DefaultSodiumLimit      = 2300
	DefaultCholesterolLimit = 300
)

// HealthProfile holds a user's dietary constraints.
type HealthProfile struct {
	UserID            string    `json:"userId" db:"user_id"`
	DietType          string    `json:"dietType" db:"diet_type"`
	MedicalConditions []string  `json:"medicalConditions" db:"medical_conditions"`
	Allergies         []string  `json:"allergies" db:"allergies"`
	CalorieLimit      float64   `json:"calorieLimit" db:"calorie_limit"`
	SugarLimit        float64   `json:"sugarLimit" db:"sugar_limit"`
	SodiumLimit       float64   `json:"sodiumLimit" db:"sodium_limit"`
	CholesterolLimit  float64   `json:"cholesterolLimit" db:"cholesterol_limit"`
	WeightGoal        string    `json:"weightGoal" db:"weight_goal"`
	SpiceTolerance    string    `json:"spiceTolerance" db:"spice_tolerance"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// HasCondition reports whether the profile lists the given medical condition.
func (p *HealthProfile) HasCondition(condition string) bool {
	for _, c := range p.MedicalConditions {
		if c == condition {
			return true
		}
	}
	return false
}

// SafetyResult is the verdict of evaluating a food against a profile.
type SafetyResult struct {
	IsSafe   bool     `json:"isSafe"`
	Warnings []string `json:"warnings"`
}

// FoodSafetyResponse represents the response payload of a safety check.
type FoodSafetyResponse struct {
	FoodID string `json:"foodId"`
	SafetyResult
}
