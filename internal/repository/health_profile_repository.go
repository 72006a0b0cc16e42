package repository

import (
	"context"
	"errors"
	"fmt"

	"food-kart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type healthProfileRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewHealthProfileRepository creates a new PostgreSQL-backed health profile repository.
func NewHealthProfileRepository(pool *pgxpool.Pool, logger zerolog.Logger) HealthProfileRepository {
	return &healthProfileRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "health_profile").Logger(),
	}
}

func (r *healthProfileRepository) Get(ctx context.Context, userID string) (*model.HealthProfile, error) {
	query := `
		SELECT user_id, diet_type, medical_conditions, allergies,
			calorie_limit, sugar_limit, sodium_limit, cholesterol_limit,
			weight_goal, spice_tolerance, updated_at
		FROM health_profiles
		WHERE user_id = $1
	`

	var p model.HealthProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.DietType,
		&p.MedicalConditions,
		&p.Allergies,
		&p.CalorieLimit,
		&p.SugarLimit,
		&p.SodiumLimit,
		&p.CholesterolLimit,
		&p.WeightGoal,
		&p.SpiceTolerance,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query health profile")
		return nil, fmt.Errorf("failed to query health profile: %w", err)
	}

	return &p, nil
}

func (r *healthProfileRepository) Upsert(ctx context.Context, p *model.HealthProfile) error {
	query := `
		INSERT INTO health_profiles (
			user_id, diet_type, medical_conditions, allergies,
			calorie_limit, sugar_limit, sodium_limit, cholesterol_limit,
			weight_goal, spice_tolerance, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			diet_type = EXCLUDED.diet_type,
			medical_conditions = EXCLUDED.medical_conditions,
			allergies = EXCLUDED.allergies,
			calorie_limit = EXCLUDED.calorie_limit,
			sugar_limit = EXCLUDED.sugar_limit,
			sodium_limit = EXCLUDED.sodium_limit,
			cholesterol_limit = EXCLUDED.cholesterol_limit,
			weight_goal = EXCLUDED.weight_goal,
			spice_tolerance = EXCLUDED.spice_tolerance,
			updated_at = EXCLUDED.updated_at
	`

	conditions := p.MedicalConditions
	if conditions == nil {
		conditions = []string{}
	}
	allergies := p.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	_, err := r.pool.Exec(ctx, query,
		p.UserID,
		p.DietType,
		conditions,
		allergies,
		p.CalorieLimit,
		p.SugarLimit,
		p.SodiumLimit,
		p.CholesterolLimit,
		p.WeightGoal,
		p.SpiceTolerance,
		p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", p.UserID).Msg("failed to upsert health profile")
		return fmt.Errorf("failed to upsert health profile: %w", err)
	}

	return nil
}
