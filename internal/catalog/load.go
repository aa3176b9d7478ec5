package catalog

import (
	"context"
	"fmt"

	"aesthetic-cakes/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Load reads every kind's section concurrently and builds the catalogue.
// Any failing section fails the whole load.
func Load(ctx context.Context, loader Loader, logger zerolog.Logger) (*Catalog, error) {
	logger = logger.With().Str("component", "catalog").Logger()

	sections := make([]*Section, len(model.Kinds))
	g, gctx := errgroup.WithContext(ctx)

	for i, kind := range model.Kinds {
		g.Go(func() error {
			section, err := loader.Load(gctx, kind)
			if err != nil {
				return fmt.Errorf("failed to load %s section: %w", kind, err)
			}
			sections[i] = section
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("failed to load catalog")
		return nil, err
	}

	c := New(sections...)

	logger.Info().
		Int("cakes", len(c.Products(model.KindCake))).
		Int("sweets", len(c.Products(model.KindSweet))).
		Msg("catalog loaded")

	return c, nil
}
