package model

import "time"

// Nutrition holds per-serving nutrition facts for a food item.
// Sodium and cholesterol are in milligrams, everything else in grams
// except calories (kcal).
type Nutrition struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

// DietaryFlags describes which diets a food item is suitable for.
type DietaryFlags struct {
	IsDiabeticSafe bool `json:"isDiabeticSafe"`
	IsVegan        bool `json:"isVegan"`
	IsGlutenFree   bool `json:"isGlutenFree"`
	IsKeto         bool `json:"isKeto"`
	IsHeartHealthy bool `json:"isHeartHealthy"`
	IsLowSodium    bool `json:"isLowSodium"`
}

// FoodItem represents a dish in the catalogue.
// Price is expressed in the minor currency unit (e.g. cents).
type FoodItem struct {
	ID           string       `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Category     string       `json:"category" db:"category"`
	Price        int64        `json:"price" db:"price"`
	Nutrition    *Nutrition   `json:"nutrition,omitempty" db:"nutrition"`
	DietaryFlags DietaryFlags `json:"dietaryFlags" db:"dietary_flags"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}
