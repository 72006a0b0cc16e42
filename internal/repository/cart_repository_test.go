package repository

import (
	"context"
	"testing"

	"food-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_GetAndSave(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	cart, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, cart)

	err = repo.Save(ctx, &model.Cart{
		UserID: "user-1",
		Items: []model.CartItem{
			{FoodID: "F001", Quantity: 2},
			{FoodID: "F002", Quantity: 1},
		},
	})
	require.NoError(t, err)

	cart, err = repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Equal(t, []model.CartItem{{FoodID: "F001", Quantity: 2}, {FoodID: "F002", Quantity: 1}}, cart.Items)
	assert.False(t, cart.UpdatedAt.IsZero())

	// Save overwrites the whole document.
	err = repo.Save(ctx, &model.Cart{UserID: "user-1", Items: []model.CartItem{{FoodID: "F003", Quantity: 5}}})
	require.NoError(t, err)

	cart, err = repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, []model.CartItem{{FoodID: "F003", Quantity: 5}}, cart.Items)

	other, err := repo.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestCartRepository_SaveEmpty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Cart{UserID: "user-1"}))

	cart, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCartRepository_GetForUpdateAndClearTx(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Cart{
		UserID: "user-1",
		Items:  []model.CartItem{{FoodID: "F001", Quantity: 3}},
	}))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	cart, err := repo.GetForUpdate(ctx, tx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)

	missing, err := repo.GetForUpdate(ctx, tx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.ClearTx(ctx, tx, "user-1"))
	require.NoError(t, tx.Commit(ctx))

	cart, err = repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart.Items)
}

func TestCartRepository_ClearTx_RolledBack(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Cart{
		UserID: "user-1",
		Items:  []model.CartItem{{FoodID: "F001", Quantity: 3}},
	}))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.ClearTx(ctx, tx, "user-1"))
	require.NoError(t, tx.Rollback(ctx))

	cart, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)
}
