package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-kart/internal/model"
	"food-kart/internal/repository"

	"github.com/rs/zerolog"
)

// healthService implements HealthService.
type healthService struct {
	profileRepo repository.HealthProfileRepository
	logger      zerolog.Logger
}

// NewHealthService creates a new health profile service.
func NewHealthService(profileRepo repository.HealthProfileRepository, logger zerolog.Logger) HealthService {
	return &healthService{
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "health").Logger(),
	}
}

func (s *healthService) GetProfile(ctx context.Context, userID string) (*model.HealthProfile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get health profile")
		return nil, fmt.Errorf("failed to get health profile: %w", err)
	}
	if profile == nil {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *healthService) UpsertProfile(ctx context.Context, userID string, profile *model.HealthProfile) (*model.HealthProfile, error) {
	if profile == nil {
		return nil, model.ErrInvalidHealthProfile
	}
	if profile.CalorieLimit < 0 || profile.SugarLimit < 0 ||
		profile.SodiumLimit < 0 || profile.CholesterolLimit < 0 {
		return nil, model.ErrInvalidHealthProfile
	}

	p := *profile
	p.UserID = userID
	p.DietType = strings.TrimSpace(p.DietType)
	p.WeightGoal = strings.TrimSpace(p.WeightGoal)
	p.SpiceTolerance = strings.TrimSpace(p.SpiceTolerance)
	p.MedicalConditions = normalizeTags(p.MedicalConditions)
	p.Allergies = normalizeTags(p.Allergies)
	p.CalorieLimit = orDefault(p.CalorieLimit, model.DefaultCalorieLimit)
	p.SugarLimit = orDefault(p.SugarLimit, model.DefaultSugarLimit)
	p.SodiumLimit = orDefault(p.SodiumLimit, model.DefaultSodiumLimit)
	p.CholesterolLimit = orDefault(p.CholesterolLimit, model.DefaultCholesterolLimit)
	p.UpdatedAt = time.Now().UTC()

	if err := s.profileRepo.Upsert(ctx, &p); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save health profile")
		return nil, fmt.Errorf("failed to save health profile: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Strs("conditions", p.MedicalConditions).
		Msg("health profile saved")

	return &p, nil
}

// normalizeTags trims, lower-cases and de-duplicates, keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
