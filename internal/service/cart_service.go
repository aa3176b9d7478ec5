package service

import (
	"context"

	"aesthetic-cakes/internal/cart"
	"aesthetic-cakes/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	store   *cart.Store
	catalog ProductCatalog
	logger  zerolog.Logger
}

// NewCartService creates a new cart service backed by store.
func NewCartService(store *cart.Store, catalog ProductCatalog, logger zerolog.Logger) CartService {
	return &cartService{
		store:   store,
		catalog: catalog,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the session's cart.
func (s *cartService) Get(ctx context.Context, sessionID uuid.UUID) (*model.CartResponse, error) {
	view := s.store.Get(sessionID).View()
	return &view, nil
}

// Add puts one unit of a catalogue product into the cart. The line keeps a
// snapshot of the product as it was when first added.
func (s *cartService) Add(ctx context.Context, sessionID uuid.UUID, key model.ProductKey) (*model.CartResponse, error) {
	if !key.Kind.Valid() || key.ID < 0 {
		return nil, model.ErrInvalidProductID
	}

	product, ok := s.catalog.Get(key)
	if !ok {
		s.logger.Warn().Str("product_key", key.String()).Msg("add of unknown product")
		return nil, model.ErrProductNotFound
	}

	c := s.store.Update(sessionID, func(c *cart.Cart) {
		c.Add(product)
	})

	s.logger.Debug().
		Str("session_id", sessionID.String()).
		Str("product_key", key.String()).
		Int("quantity", c.Quantity(key)).
		Msg("added to cart")

	view := c.View()
	return &view, nil
}

// UpdateQuantity sets a line's quantity; zero removes it and an absent line
// is left alone. Quantities above cart.MaxQuantity are rejected.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, key model.ProductKey, quantity int) (*model.CartResponse, error) {
	if quantity < 0 || quantity > cart.MaxQuantity {
		s.logger.Warn().
			Str("product_key", key.String()).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	c := s.store.Update(sessionID, func(c *cart.Cart) {
		c.UpdateQuantity(key, quantity)
	})

	s.logger.Debug().
		Str("session_id", sessionID.String()).
		Str("product_key", key.String()).
		Int("quantity", quantity).
		Msg("updated cart quantity")

	view := c.View()
	return &view, nil
}

// Remove deletes a line from the cart. Removing an absent line is a no-op.
func (s *cartService) Remove(ctx context.Context, sessionID uuid.UUID, key model.ProductKey) (*model.CartResponse, error) {
	c := s.store.Update(sessionID, func(c *cart.Cart) {
		c.Remove(key)
	})

	s.logger.Debug().
		Str("session_id", sessionID.String()).
		Str("product_key", key.String()).
		Msg("removed from cart")

	view := c.View()
	return &view, nil
}
