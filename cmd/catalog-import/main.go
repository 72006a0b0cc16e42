// Command catalog-import loads gzipped JSON-lines catalogue dumps into the
// foods table. Files are read from S3 when enabled, with a local fallback.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"food-kart/internal/catalog"
	"food-kart/internal/config"
	"food-kart/internal/database"
	"food-kart/internal/repository"
)

func main() {
	files := flag.String("files", "", "comma-separated catalogue files (defaults to CATALOG_FILES)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *files); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, files string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	paths := cfg.Catalog.Files
	if files != "" {
		paths = nil
		for _, p := range strings.Split(files, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no catalogue files configured")
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	fileLoader := catalog.NewFileLoader(logger)
	var s3Loader catalog.Loader
	s3Enabled := cfg.S3.Enabled
	if s3Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Enabled = false
		}
	} else {
		logger.Info().Msg("using local file system for catalogue files (S3 disabled)")
	}

	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, s3Enabled, logger)
	importer := catalog.NewImporter(loader, repository.NewFoodRepository(pool, logger), logger)

	n, err := importer.Import(ctx, paths)
	if err != nil {
		return fmt.Errorf("catalogue import failed: %w", err)
	}

	logger.Info().Int("foods", n).Strs("files", paths).Msg("catalogue import completed")
	return nil
}
