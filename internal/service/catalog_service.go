package service

import (
	"context"

	"aesthetic-cakes/internal/model"
	"aesthetic-cakes/internal/search"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalog ProductCatalog
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(catalog ProductCatalog, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

// Listing returns a kind's products filtered by category.
func (s *catalogService) Listing(ctx context.Context, kind model.Kind, category string) (*model.Listing, error) {
	if !kind.Valid() {
		return nil, model.ErrProductNotFound
	}

	if category == "" {
		category = model.CategoryAll
	}

	products := search.FilterByCategory(category, s.catalog.Products(kind))

	s.logger.Debug().
		Str("kind", string(kind)).
		Str("category", category).
		Int("count", len(products)).
		Msg("listed products")

	return &model.Listing{
		Kind:       kind,
		Categories: s.catalog.Categories(kind),
		Selected:   category,
		Products:   products,
	}, nil
}

// Detail retrieves a single product by kind and ID.
func (s *catalogService) Detail(ctx context.Context, kind model.Kind, id int) (*model.Product, error) {
	if id < 0 {
		s.logger.Warn().Int("product_id", id).Msg("negative product ID")
		return nil, model.ErrInvalidProductID
	}

	key := model.ProductKey{Kind: kind, ID: id}
	product, ok := s.catalog.Get(key)
	if !ok {
		s.logger.Debug().Str("product_key", key.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}

// Search runs a case-insensitive search over the whole catalogue.
func (s *catalogService) Search(ctx context.Context, query string, limit int) (*model.SearchResponse, error) {
	results := search.Search(query, s.catalog.All())
	count := len(results)

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug().
		Str("query", query).
		Int("matches", count).
		Int("limit", limit).
		Msg("searched catalogue")

	return &model.SearchResponse{
		Query:   query,
		Count:   count,
		Results: results,
	}, nil
}

// Featured returns the home page picks.
func (s *catalogService) Featured(ctx context.Context) ([]model.Product, error) {
	return s.catalog.Featured(), nil
}
