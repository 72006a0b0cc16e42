// Package safety evaluates food items against a user's health profile.
package safety

import "food-kart/internal/model"

// Warning messages emitted by the built-in rules.
const (
	WarningHighSugar        = "High sugar content"
	WarningHighSodium       = "High sodium content"
	WarningNotHeartFriendly = "Not heart friendly"
)

// Rule inspects a profile and a food with nutrition facts present and
// returns a warning message, or "" when the rule does not apply.
type Rule func(profile *model.HealthProfile, food *model.FoodItem) string

// DefaultRules are evaluated by Check in order.
var DefaultRules = []Rule{
	highSugar,
	highSodium,
	notHeartFriendly,
}

// Check evaluates every default rule and accumulates warnings.
// A nil profile or a food without nutrition facts is always safe.
func Check(profile *model.HealthProfile, food *model.FoodItem) model.SafetyResult {
	return CheckWith(DefaultRules, profile, food)
}

// CheckWith is Check with a caller-supplied rule set.
func CheckWith(rules []Rule, profile *model.HealthProfile, food *model.FoodItem) model.SafetyResult {
	warnings := []string{}
	if profile == nil || food == nil || food.Nutrition == nil {
		return model.SafetyResult{IsSafe: true, Warnings: warnings}
	}

	for _, rule := range rules {
		if w := rule(profile, food); w != "" {
			warnings = append(warnings, w)
		}
	}

	return model.SafetyResult{
		IsSafe:   len(warnings) == 0,
		Warnings: warnings,
	}
}

func highSugar(profile *model.HealthProfile, food *model.FoodItem) string {
	if profile.HasCondition(model.ConditionDiabetes) && food.Nutrition.Sugar > profile.SugarLimit {
		return WarningHighSugar
	}
	return ""
}

func highSodium(profile *model.HealthProfile, food *model.FoodItem) string {
	if profile.HasCondition(model.ConditionBloodPressure) && food.Nutrition.Sodium > profile.SodiumLimit {
		return WarningHighSodium
	}
	return ""
}

func notHeartFriendly(profile *model.HealthProfile, food *model.FoodItem) string {
	if profile.HasCondition(model.ConditionHeart) && !food.DietaryFlags.IsHeartHealthy {
		return WarningNotHeartFriendly
	}
	return ""
}
