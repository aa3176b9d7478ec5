package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which catalogue list a product belongs to.
type Kind string

const (
	KindCake  Kind = "cake"
	KindSweet Kind = "sweet"
)

// Kinds lists every kind in catalogue order: cakes first, then sweets.
var Kinds = []Kind{KindCake, KindSweet}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindCake || k == KindSweet
}

// Route returns the browsing route segment for the kind.
func (k Kind) Route() string {
	if k == KindSweet {
		return "sweeties"
	}
	return "portfolio"
}

// Product represents a single bakery item in the catalogue.
type Product struct {
	ID          int    `json:"id" yaml:"id" db:"id"`
	Kind        Kind   `json:"kind" yaml:"-" db:"kind"`
	Name        string `json:"name" yaml:"name" db:"name"`
	Description string `json:"description" yaml:"description" db:"description"`
	Category    string `json:"category" yaml:"category" db:"category"`
	Price       string `json:"price" yaml:"price" db:"price"`
	Image       string `json:"image" yaml:"image" db:"image"`
}

// Key returns the catalogue-wide key of the product.
func (p Product) Key() ProductKey {
	return ProductKey{Kind: p.Kind, ID: p.ID}
}

// ProductKey identifies a product across kinds. Product IDs are only
// unique within one kind's list.
type ProductKey struct {
	Kind Kind `json:"kind"`
	ID   int  `json:"id"`
}

// String renders the key as "<kind>-<id>".
func (k ProductKey) String() string {
	return fmt.Sprintf("%s-%d", k.Kind, k.ID)
}

// ParseProductKey parses a key rendered by ProductKey.String.
func ParseProductKey(s string) (ProductKey, error) {
	kind, idStr, ok := strings.Cut(s, "-")
	if !ok {
		return ProductKey{}, ErrInvalidProductID
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 {
		return ProductKey{}, ErrInvalidProductID
	}

	key := ProductKey{Kind: Kind(kind), ID: id}
	if !key.Kind.Valid() {
		return ProductKey{}, ErrInvalidProductID
	}

	return key, nil
}

// CategoryAll is the filter label that selects every product.
const CategoryAll = "All"

// Listing is the response payload for a kind's browse page.
type Listing struct {
	Kind       Kind      `json:"kind"`
	Categories []string  `json:"categories"`
	Selected   string    `json:"selected"`
	Products   []Product `json:"products"`
}

// SearchResponse is the response payload for a search request.
type SearchResponse struct {
	Query   string    `json:"query"`
	Count   int       `json:"count"`
	Results []Product `json:"results"`
}
