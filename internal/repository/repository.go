package repository

import (
	"context"

	"aesthetic-cakes/internal/model"
)

// ProductRepository defines the interface for catalogue data access operations.
type ProductRepository interface {
	// ListByKind retrieves one kind's products in declaration order.
	ListByKind(ctx context.Context, kind model.Kind) ([]model.Product, error)

	// ListCategories retrieves one kind's category labels in declaration order.
	ListCategories(ctx context.Context, kind model.Kind) ([]string, error)

	// ReplaceSection atomically replaces one kind's products and categories.
	ReplaceSection(ctx context.Context, kind model.Kind, categories []string, products []model.Product) error
}
