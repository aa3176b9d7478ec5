package model

import "github.com/shopspring/decimal"

// CartLine is one entry of a cart: a product snapshot and its quantity.
type CartLine struct {
	Key      ProductKey `json:"key"`
	Product  Product    `json:"product"`
	Quantity int        `json:"quantity"`
}

// CartLineView is a cart line as rendered to clients.
type CartLineView struct {
	Key       string          `json:"key"`
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	Priced    bool            `json:"priced"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartResponse represents the response payload for a cart.
type CartResponse struct {
	Lines      []CartLineView  `json:"lines"`
	TotalCount int             `json:"totalCount"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// AddToCartRequest represents the request payload for adding a product.
type AddToCartRequest struct {
	Kind Kind `json:"kind"`
	ID   *int `json:"id"`
}

// UpdateQuantityRequest represents the request payload for setting a quantity.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}
