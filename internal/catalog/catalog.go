// Package catalog loads food catalogue dumps and imports them into storage.
//
// A dump is a gzip-compressed JSON-lines file with one FoodItem per line.
package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"food-kart/internal/model"

	"github.com/klauspost/pgzip"
	"github.com/rs/zerolog"
)

// Loader defines the interface for loading catalogue dumps.
type Loader interface {
	// Load reads a gzipped JSON-lines dump and returns its valid foods.
	Load(ctx context.Context, path string) ([]model.FoodItem, error)
}

const maxLineSize = 1024 * 1024

// decode reads a gzipped JSON-lines stream. Blank lines are ignored and
// malformed or invalid records are skipped with a warning.
func decode(ctx context.Context, r io.Reader, source string, logger zerolog.Logger) ([]model.FoodItem, error) {
	gz, err := pgzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	foods := []model.FoodItem{}
	lineNo, skipped := 0, 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			select {
			case <-ctx.Done():
				logger.Warn().Str("source", source).Msg("catalogue loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var food model.FoodItem
		if err := json.Unmarshal([]byte(line), &food); err != nil {
			skipped++
			logger.Warn().Err(err).Str("source", source).Int("line", lineNo).Msg("skipping malformed catalogue line")
			continue
		}
		if err := validateFood(&food); err != nil {
			skipped++
			logger.Warn().Err(err).Str("source", source).Int("line", lineNo).Msg("skipping invalid food")
			continue
		}
		foods = append(foods, food)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalogue %s: %w", source, err)
	}

	logger.Info().
		Str("source", source).
		Int("foods_loaded", len(foods)).
		Int("skipped", skipped).
		Msg("catalogue loaded")

	return foods, nil
}

var (
	errMissingID        = errors.New("food id is required")
	errMissingName      = errors.New("food name is required")
	errNegativePrice    = errors.New("food price must not be negative")
	errNegativeNutrient = errors.New("nutrition values must not be negative")
)

func validateFood(f *model.FoodItem) error {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)

	if f.ID == "" {
		return errMissingID
	}
	if f.Name == "" {
		return errMissingName
	}
	if f.Price < 0 {
		return errNegativePrice
	}
	if n := f.Nutrition; n != nil {
		for _, v := range []float64{n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber, n.Sugar, n.Sodium, n.Cholesterol} {
			if v < 0 {
				return errNegativeNutrient
			}
		}
	}
	return nil
}
