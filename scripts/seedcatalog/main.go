// Command seedcatalog copies the embedded catalogue into PostgreSQL for the
// postgres catalogue source. It reads the same DB_* variables as the API.
//
//	DB_HOST=localhost DB_PASSWORD=postgres go run ./scripts/seedcatalog
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"aesthetic-cakes/internal/catalog"
	"aesthetic-cakes/internal/config"
	"aesthetic-cakes/internal/database"
	"aesthetic-cakes/internal/model"
	"aesthetic-cakes/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return err
	}

	loader := catalog.NewEmbeddedLoader(logger)
	repo := repository.NewProductRepository(pool, logger)

	for _, kind := range model.Kinds {
		section, err := loader.Load(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to load embedded %s section: %w", kind, err)
		}
		if err := repo.ReplaceSection(ctx, kind, section.Categories, section.Products); err != nil {
			return err
		}
	}

	logger.Info().Str("database", cfg.Database.Database).Msg("catalogue seeded")
	return nil
}
