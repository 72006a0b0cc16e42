package service

import (
	"context"
	"fmt"

	"food-kart/internal/model"
	"food-kart/internal/repository"
	"food-kart/internal/safety"

	"github.com/rs/zerolog"
)

// foodService implements FoodService.
type foodService struct {
	foodRepo    repository.FoodRepository
	profileRepo repository.HealthProfileRepository
	logger      zerolog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(
	foodRepo repository.FoodRepository,
	profileRepo repository.HealthProfileRepository,
	logger zerolog.Logger,
) FoodService {
	return &foodService{
		foodRepo:    foodRepo,
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "food").Logger(),
	}
}

// GetAll retrieves foods with pagination.
func (s *foodService) GetAll(ctx context.Context, category string, limit, offset int) ([]model.FoodItem, error) {
	limit, offset = clampPage(limit, offset)

	foods, err := s.foodRepo.GetAll(ctx, category, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", category).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get foods")
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}

	s.logger.Debug().
		Int("count", len(foods)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved foods")

	return foods, nil
}

// GetByID retrieves a single food by ID.
func (s *foodService) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	if id == "" {
		return nil, model.ErrFoodNotFound
	}

	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id).Msg("failed to get food")
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	if food == nil {
		return nil, model.ErrFoodNotFound
	}

	return food, nil
}

// CheckSafety evaluates a food against the caller's profile. Users without a
// profile always get a safe verdict.
func (s *foodService) CheckSafety(ctx context.Context, userID, foodID string) (*model.FoodSafetyResponse, error) {
	food, err := s.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get health profile")
		return nil, fmt.Errorf("failed to get health profile: %w", err)
	}

	result := safety.Check(profile, food)

	s.logger.Debug().
		Str("user_id", userID).
		Str("food_id", foodID).
		Bool("is_safe", result.IsSafe).
		Int("warnings", len(result.Warnings)).
		Msg("food safety checked")

	return &model.FoodSafetyResponse{FoodID: food.ID, SafetyResult: result}, nil
}
