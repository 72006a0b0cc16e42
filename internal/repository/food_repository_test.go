package repository

import (
	"context"
	"testing"

	"food-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFoods() []model.FoodItem {
	return []model.FoodItem{
		{ID: "F001", Name: "Apple Salad", Category: "salad", Price: 450,
			Nutrition: &model.Nutrition{Calories: 120, Sugar: 18, Sodium: 40}},
		{ID: "F002", Name: "Beef Burger", Category: "burger", Price: 1200,
			Nutrition: &model.Nutrition{Calories: 780, Sugar: 9, Sodium: 1100, Cholesterol: 95}},
		{ID: "F003", Name: "Caesar Salad", Category: "salad", Price: 650},
		{ID: "F004", Name: "Dal Tadka", Category: "curry", Price: 700,
			DietaryFlags: model.DietaryFlags{IsVegan: true, IsGlutenFree: true}},
		{ID: "F005", Name: "Egg Fried Rice", Category: "rice", Price: 550},
	}
}

func TestFoodRepository_GetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFoodRepository(pool, zerolog.Nop())
	seedFoods(t, pool, testFoods())

	tests := []struct {
		name     string
		category string
		limit    int
		offset   int
		expected int
	}{
		{name: "Get all foods", limit: 10, offset: 0, expected: 5},
		{name: "Get first page", limit: 2, offset: 0, expected: 2},
		{name: "Get last page", limit: 2, offset: 4, expected: 1},
		{name: "Offset beyond results", limit: 10, offset: 10, expected: 0},
		{name: "Filter by category", category: "salad", limit: 10, offset: 0, expected: 2},
		{name: "Unknown category", category: "dessert", limit: 10, offset: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods, err := repo.GetAll(context.Background(), tt.category, tt.limit, tt.offset)

			require.NoError(t, err)
			require.NotNil(t, foods)
			assert.Len(t, foods, tt.expected)

			for i := 1; i < len(foods); i++ {
				assert.LessOrEqual(t, foods[i-1].Name, foods[i].Name)
			}
			for _, f := range foods {
				if tt.category != "" {
					assert.Equal(t, tt.category, f.Category)
				}
			}
		})
	}
}

func TestFoodRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFoodRepository(pool, zerolog.Nop())
	seedFoods(t, pool, testFoods())

	ctx := context.Background()

	food, err := repo.GetByID(ctx, "F002")
	require.NoError(t, err)
	require.NotNil(t, food)
	assert.Equal(t, "Beef Burger", food.Name)
	assert.Equal(t, int64(1200), food.Price)
	require.NotNil(t, food.Nutrition)
	assert.Equal(t, 1100.0, food.Nutrition.Sodium)

	food, err = repo.GetByID(ctx, "F004")
	require.NoError(t, err)
	require.NotNil(t, food)
	assert.Nil(t, food.Nutrition)
	assert.True(t, food.DietaryFlags.IsVegan)

	food, err = repo.GetByID(ctx, "F999")
	require.NoError(t, err)
	assert.Nil(t, food)
}

func TestFoodRepository_GetByIDs(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFoodRepository(pool, zerolog.Nop())
	seedFoods(t, pool, testFoods())

	ctx := context.Background()

	foods, err := repo.GetByIDs(ctx, []string{"F001", "F999", "F003"})
	require.NoError(t, err)
	require.Len(t, foods, 2)

	ids := []string{foods[0].ID, foods[1].ID}
	assert.ElementsMatch(t, []string{"F001", "F003"}, ids)

	foods, err = repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestFoodRepository_Upsert_ReplacesExisting(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFoodRepository(pool, zerolog.Nop())
	seedFoods(t, pool, testFoods())

	ctx := context.Background()

	n, err := repo.Upsert(ctx, []model.FoodItem{
		{ID: "F001", Name: "Apple Salad", Category: "salad", Price: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	food, err := repo.GetByID(ctx, "F001")
	require.NoError(t, err)
	require.NotNil(t, food)
	assert.Equal(t, int64(500), food.Price)
	assert.Nil(t, food.Nutrition)

	all, err := repo.GetAll(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
