package repository

import (
	"context"
	"fmt"

	"aesthetic-cakes/internal/catalog"
	"aesthetic-cakes/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// ListByKind retrieves one kind's products in declaration order.
func (r *productRepository) ListByKind(ctx context.Context, kind model.Kind) ([]model.Product, error) {
	query := `
		SELECT id, kind, name, description, category, price, image
		FROM catalog_products
		WHERE kind = $1
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query, string(kind))
	if err != nil {
		r.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		var k string
		err := rows.Scan(&p.ID, &k, &p.Name, &p.Description, &p.Category, &p.Price, &p.Image)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Kind = model.Kind(k)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// ListCategories retrieves one kind's category labels in declaration order.
func (r *productRepository) ListCategories(ctx context.Context, kind model.Kind) ([]string, error) {
	query := `
		SELECT label
		FROM catalog_categories
		WHERE kind = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, string(kind))
	if err != nil {
		r.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	labels, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to collect category rows")
		return nil, fmt.Errorf("failed to collect categories: %w", err)
	}

	return labels, nil
}

// ReplaceSection atomically replaces one kind's products and categories.
func (r *productRepository) ReplaceSection(ctx context.Context, kind model.Kind, categories []string, products []model.Product) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM catalog_products WHERE kind = $1`, string(kind)); err != nil {
		return fmt.Errorf("failed to clear %s products: %w", kind, err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM catalog_categories WHERE kind = $1`, string(kind)); err != nil {
		return fmt.Errorf("failed to clear %s categories: %w", kind, err)
	}

	batch := &pgx.Batch{}
	for i, p := range products {
		batch.Queue(`
			INSERT INTO catalog_products (kind, id, position, name, description, category, price, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			string(kind), p.ID, i, p.Name, p.Description, p.Category, p.Price, p.Image,
		)
	}
	for i, label := range categories {
		batch.Queue(`
			INSERT INTO catalog_categories (kind, label, position)
			VALUES ($1, $2, $3)`,
			string(kind), label, i,
		)
	}

	if batch.Len() > 0 {
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			r.logger.Error().
				Err(err).
				Str("kind", string(kind)).
				Int("product_count", len(products)).
				Msg("failed to insert catalog section")
			return fmt.Errorf("failed to insert %s section: %w", kind, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to commit transaction")
		return fmt.Errorf("failed to replace %s section: %w", kind, err)
	}

	r.logger.Info().
		Str("kind", string(kind)).
		Int("products", len(products)).
		Int("categories", len(categories)).
		Msg("catalog section replaced")

	return nil
}

// catalogLoader adapts a ProductRepository to catalog.Loader.
type catalogLoader struct {
	repo ProductRepository
}

// NewCatalogLoader returns a catalogue loader that reads sections from repo.
func NewCatalogLoader(repo ProductRepository) catalog.Loader {
	return &catalogLoader{repo: repo}
}

// Load reads kind's products and categories from the repository.
func (l *catalogLoader) Load(ctx context.Context, kind model.Kind) (*catalog.Section, error) {
	products, err := l.repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	categories, err := l.repo.ListCategories(ctx, kind)
	if err != nil {
		return nil, err
	}

	return catalog.NewSection(kind, categories, products)
}
