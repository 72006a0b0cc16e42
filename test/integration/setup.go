package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"food-kart/internal/config"
	"food-kart/internal/database"
	"food-kart/internal/model"
	"food-kart/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the application
// schema applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SampleFoods is the catalogue used by the integration tests.
func SampleFoods() []model.FoodItem {
	return []model.FoodItem{
		{
			ID: "F001", Name: "Tropical Fruit Salad", Category: "salads", Price: 450,
			Nutrition:    &model.Nutrition{Calories: 210, Sugar: 22, Sodium: 15},
			DietaryFlags: model.DietaryFlags{IsVegan: true},
		},
		{
			ID: "F002", Name: "Double Cheese Burger", Category: "burgers", Price: 1200,
			Nutrition: &model.Nutrition{Calories: 980, Sugar: 12, Sodium: 1400, Cholesterol: 180},
		},
		{
			ID: "F003", Name: "Brown Rice Bowl", Category: "bowls", Price: 800,
			DietaryFlags: model.DietaryFlags{IsHeartHealthy: true},
		},
	}
}

// SeedFoods inserts the sample catalogue.
func SeedFoods(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	repo := repository.NewFoodRepository(pool, zerolog.Nop())
	if _, err := repo.Upsert(context.Background(), SampleFoods()); err != nil {
		t.Fatalf("failed to seed foods: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "carts", "health_profiles", "foods"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
