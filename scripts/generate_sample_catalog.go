package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"food-kart/internal/config"
	"food-kart/internal/model"

	"github.com/klauspost/pgzip"
)

// generateSampleCatalog writes a small gzipped JSON-lines catalogue that
// exercises every safety rule: high sugar, high sodium, heart-friendly and
// items without nutrition data.
func main() {
	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})
	path := filepath.Join("data", "catalog", "foods.jsonl.gz")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Fatal().Err(err).Str("dir", filepath.Dir(path)).Msg("failed to create directory")
	}

	foods := []model.FoodItem{
		{
			ID: "F001", Name: "Tropical Fruit Salad", Category: "salads", Price: 450,
			Nutrition:    &model.Nutrition{Calories: 210, Protein: 3, Carbs: 48, Fat: 1, Fiber: 6, Sugar: 22, Sodium: 15},
			DietaryFlags: model.DietaryFlags{IsVegan: true, IsGlutenFree: true, IsLowSodium: true},
		},
		{
			ID: "F002", Name: "Double Cheese Burger", Category: "burgers", Price: 1200,
			Nutrition: &model.Nutrition{Calories: 980, Protein: 52, Carbs: 61, Fat: 58, Fiber: 3, Sugar: 12, Sodium: 1400, Cholesterol: 180},
		},
		{
			ID: "F003", Name: "Brown Rice Bowl", Category: "bowls", Price: 800,
			DietaryFlags: model.DietaryFlags{IsVegan: true, IsHeartHealthy: true, IsGlutenFree: true},
		},
		{
			ID: "F004", Name: "Grilled Salmon", Category: "mains", Price: 1650,
			Nutrition:    &model.Nutrition{Calories: 420, Protein: 39, Carbs: 4, Fat: 26, Sugar: 1, Sodium: 380, Cholesterol: 95},
			DietaryFlags: model.DietaryFlags{IsDiabeticSafe: true, IsGlutenFree: true, IsKeto: true, IsHeartHealthy: true},
		},
		{
			ID: "F005", Name: "Masala Dosa", Category: "breakfast", Price: 650,
			Nutrition:    &model.Nutrition{Calories: 390, Protein: 8, Carbs: 58, Fat: 14, Fiber: 4, Sugar: 4, Sodium: 720},
			DietaryFlags: model.DietaryFlags{IsVegan: true},
		},
		{
			ID: "F006", Name: "Chocolate Milkshake", Category: "drinks", Price: 550,
			Nutrition: &model.Nutrition{Calories: 560, Protein: 12, Carbs: 78, Fat: 22, Sugar: 68, Sodium: 310, Cholesterol: 70},
		},
		{
			ID: "F007", Name: "Lentil Soup", Category: "soups", Price: 500,
			Nutrition:    &model.Nutrition{Calories: 230, Protein: 14, Carbs: 34, Fat: 4, Fiber: 11, Sugar: 5, Sodium: 480},
			DietaryFlags: model.DietaryFlags{IsVegan: true, IsDiabeticSafe: true, IsHeartHealthy: true, IsGlutenFree: true},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to create file")
	}
	defer f.Close()

	gz := pgzip.NewWriter(f)
	enc := json.NewEncoder(gz)
	for _, food := range foods {
		if err := enc.Encode(food); err != nil {
			logger.Fatal().Err(err).Str("food_id", food.ID).Msg("failed to write food")
		}
	}

	if err := gz.Close(); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to finish gzip stream")
	}

	logger.Info().Int("foods", len(foods)).Str("path", path).Msg("sample catalogue written")
}
