package catalog

import (
	"context"
	"fmt"

	"food-kart/internal/model"
	"food-kart/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultBatchSize = 500

// Importer loads catalogue dumps and upserts them into the food repository.
type Importer struct {
	loader    Loader
	foods     repository.FoodRepository
	batchSize int
	logger    zerolog.Logger
}

// NewImporter creates a new catalogue importer.
func NewImporter(loader Loader, foods repository.FoodRepository, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:    loader,
		foods:     foods,
		batchSize: defaultBatchSize,
		logger:    logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Import loads every path concurrently and writes the merged result. When
// the same food ID appears more than once, the record from the later path
// wins. Nothing is written if any path fails to load.
func (im *Importer) Import(ctx context.Context, paths []string) (int, error) {
	results := make([][]model.FoodItem, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			foods, err := im.loader.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to load catalogue %s: %w", path, err)
			}
			results[i] = foods
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		im.logger.Error().Err(err).Msg("catalogue import aborted")
		return 0, err
	}

	merged := merge(results)

	written := 0
	for start := 0; start < len(merged); start += im.batchSize {
		end := min(start+im.batchSize, len(merged))
		n, err := im.foods.Upsert(ctx, merged[start:end])
		if err != nil {
			im.logger.Error().Err(err).Int("written", written).Msg("failed to upsert catalogue batch")
			return written, fmt.Errorf("failed to upsert catalogue: %w", err)
		}
		written += n
	}

	im.logger.Info().
		Int("files", len(paths)).
		Int("foods", written).
		Msg("catalogue import finished")

	return written, nil
}

// merge flattens per-file results, keeping the last record per ID at the
// position of its first appearance.
func merge(results [][]model.FoodItem) []model.FoodItem {
	index := map[string]int{}
	merged := []model.FoodItem{}
	for _, foods := range results {
		for _, f := range foods {
			if i, ok := index[f.ID]; ok {
				merged[i] = f
				continue
			}
			index[f.ID] = len(merged)
			merged = append(merged, f)
		}
	}
	return merged
}
