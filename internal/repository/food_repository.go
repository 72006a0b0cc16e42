package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"food-kart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const foodColumns = `id, name, category, price, nutrition, dietary_flags, created_at, updated_at`

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

// GetAll retrieves foods with pagination, optionally filtered by category.
func (r *foodRepository) GetAll(ctx context.Context, category string, limit, offset int) ([]model.FoodItem, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE $1 = '' OR category = $1
		ORDER BY name, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, category, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Str("category", category).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// GetByID retrieves a single food by its ID.
func (r *foodRepository) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE id = $1`

	food, err := scanFood(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("food_id", id).Msg("food not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_id", id).Msg("failed to query food")
		return nil, fmt.Errorf("failed to query food: %w", err)
	}

	return food, nil
}

// GetByIDs retrieves the foods that exist among ids.
func (r *foodRepository) GetByIDs(ctx context.Context, ids []string) ([]model.FoodItem, error) {
	if len(ids) == 0 {
		return []model.FoodItem{}, nil
	}

	query := `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE id = ANY($1)
		ORDER BY name, id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query foods by IDs")
		return nil, fmt.Errorf("failed to query foods by IDs: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Upsert inserts or replaces foods by ID using a single batch.
func (r *foodRepository) Upsert(ctx context.Context, foods []model.FoodItem) (int, error) {
	if len(foods) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO foods (id, name, category, price, nutrition, dietary_flags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			nutrition = EXCLUDED.nutrition,
			dietary_flags = EXCLUDED.dietary_flags,
			updated_at = NOW()
	`

	batch := &pgx.Batch{}
	for _, f := range foods {
		nutrition, flags, err := encodeFoodDocuments(f)
		if err != nil {
			return 0, err
		}
		batch.Queue(query, f.ID, f.Name, f.Category, f.Price, nutrition, flags)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range foods {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("food_id", foods[i].ID).
				Msg("failed to upsert food")
			return i, fmt.Errorf("failed to upsert food %s: %w", foods[i].ID, err)
		}
	}

	r.logger.Debug().Int("count", len(foods)).Msg("foods upserted")

	return len(foods), nil
}

func (r *foodRepository) collect(rows pgx.Rows) ([]model.FoodItem, error) {
	foods := []model.FoodItem{}
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, *food)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	return foods, nil
}

func scanFood(row pgx.Row) (*model.FoodItem, error) {
	var (
		f         model.FoodItem
		nutrition []byte
		flags     []byte
	)
	err := row.Scan(&f.ID, &f.Name, &f.Category, &f.Price, &nutrition, &flags, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(nutrition) > 0 && string(nutrition) != "null" {
		f.Nutrition = &model.Nutrition{}
		if err := json.Unmarshal(nutrition, f.Nutrition); err != nil {
			return nil, fmt.Errorf("failed to decode nutrition of %s: %w", f.ID, err)
		}
	}
	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &f.DietaryFlags); err != nil {
			return nil, fmt.Errorf("failed to decode dietary flags of %s: %w", f.ID, err)
		}
	}

	return &f, nil
}

func encodeFoodDocuments(f model.FoodItem) (nutrition, flags []byte, err error) {
	if f.Nutrition != nil {
		if nutrition, err = json.Marshal(f.Nutrition); err != nil {
			return nil, nil, fmt.Errorf("failed to encode nutrition of %s: %w", f.ID, err)
		}
	}
	if flags, err = json.Marshal(f.DietaryFlags); err != nil {
		return nil, nil, fmt.Errorf("failed to encode dietary flags of %s: %w", f.ID, err)
	}
	return nutrition, flags, nil
}
