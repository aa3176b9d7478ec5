package service

import (
	"context"

	"aesthetic-cakes/internal/model"

	"github.com/google/uuid"
)

// ProductCatalog is the read-only view of the catalogue the services need.
// *catalog.Catalog satisfies it.
type ProductCatalog interface {
	All() []model.Product
	Products(kind model.Kind) []model.Product
	Categories(kind model.Kind) []string
	Get(key model.ProductKey) (model.Product, bool)
	Featured() []model.Product
}

// CatalogService defines read operations over the product catalogue.
type CatalogService interface {
	// Listing returns the products of kind narrowed to category, together
	// with the kind's filter labels. An empty category selects all.
	Listing(ctx context.Context, kind model.Kind, category string) (*model.Listing, error)

	// Detail retrieves a single product by kind and ID.
	Detail(ctx context.Context, kind model.Kind, id int) (*model.Product, error)

	// Search returns products matching query. A positive limit caps the
	// number of results returned; Count still reports every match.
	Search(ctx context.Context, query string, limit int) (*model.SearchResponse, error)

	// Featured returns the home page picks.
	Featured(ctx context.Context) ([]model.Product, error)
}

// CartService defines operations on a session's cart.
type CartService interface {
	// Get returns the session's cart.
	Get(ctx context.Context, sessionID uuid.UUID) (*model.CartResponse, error)

	// Add puts one unit of the product into the cart.
	Add(ctx context.Context, sessionID uuid.UUID, key model.ProductKey) (*model.CartResponse, error)

	// UpdateQuantity sets a line's quantity. Zero removes the line.
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, key model.ProductKey, quantity int) (*model.CartResponse, error)

	// Remove deletes a line from the cart.
	Remove(ctx context.Context, sessionID uuid.UUID, key model.ProductKey) (*model.CartResponse, error)
}

// ContactService defines contact form submission.
type ContactService interface {
	// Submit validates msg and hands it to the mail relay once.
	Submit(ctx context.Context, sessionID uuid.UUID, msg *model.ContactMessage) (*model.ContactResponse, error)
}
