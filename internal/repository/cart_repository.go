package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"food-kart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
// Each user owns a single row whose items column holds the cart document.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Get retrieves the cart of a user.
func (r *cartRepository) Get(ctx context.Context, userID string) (*model.Cart, error) {
	query := `SELECT user_id, items, updated_at FROM carts WHERE user_id = $1`

	cart, err := scanCart(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("user_id", userID).Msg("cart not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return cart, nil
}

// Save overwrites the cart document. Concurrent saves are last-write-wins.
func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	items, err := encodeCartItems(cart.Items)
	if err != nil {
		return err
	}

	cart.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			items = EXCLUDED.items,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.pool.Exec(ctx, query, cart.UserID, items, cart.UpdatedAt); err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", cart.UserID).
			Int("item_count", len(cart.Items)).
			Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	r.logger.Debug().
		Str("user_id", cart.UserID).
		Int("item_count", len(cart.Items)).
		Msg("cart saved")

	return nil
}

// GetForUpdate reads and row-locks the cart within tx.
func (r *cartRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*model.Cart, error) {
	query := `SELECT user_id, items, updated_at FROM carts WHERE user_id = $1 FOR UPDATE`

	cart, err := scanCart(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to lock cart")
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}

	return cart, nil
}

// ClearTx empties the cart within tx. The row itself is kept.
func (r *cartRepository) ClearTx(ctx context.Context, tx pgx.Tx, userID string) error {
	query := `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, '[]'::jsonb, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			items = '[]'::jsonb,
			updated_at = NOW()
	`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func scanCart(row pgx.Row) (*model.Cart, error) {
	var (
		cart  model.Cart
		items []byte
	)
	if err := row.Scan(&cart.UserID, &items, &cart.UpdatedAt); err != nil {
		return nil, err
	}

	cart.Items = []model.CartItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &cart.Items); err != nil {
			return nil, fmt.Errorf("failed to decode cart items: %w", err)
		}
	}

	return &cart, nil
}

func encodeCartItems(items []model.CartItem) ([]byte, error) {
	if items == nil {
		items = []model.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart items: %w", err)
	}
	return b, nil
}
