package catalog

import (
	"context"

	"aesthetic-cakes/internal/model"
)

// Loader defines the interface for loading one kind's catalogue section.
type Loader interface {
	// Load reads the section for kind.
	Load(ctx context.Context, kind model.Kind) (*Section, error)
}

// Section is the product list of one kind together with its declared
// category labels.
type Section struct {
	Kind       model.Kind
	Categories []string
	Products   []model.Product
}

// FeaturedKeys are the products shown on the home page, in display order.
// Picks are by product ID, not by position within a section.
var FeaturedKeys = []model.ProductKey{
	{Kind: model.KindCake, ID: 1},
	{Kind: model.KindSweet, ID: 1},
	{Kind: model.KindCake, ID: 7},
	{Kind: model.KindSweet, ID: 2},
	{Kind: model.KindCake, ID: 3},
	{Kind: model.KindCake, ID: 8},
}

// Catalog is the read-only product catalogue. It is built once at startup
// and never mutated, so it is safe for concurrent readers without locking.
type Catalog struct {
	sections map[model.Kind]*Section
	all      []model.Product
	index    map[model.ProductKey]model.Product
}

// New builds a catalogue from sections. Sections are ordered by model.Kinds
// regardless of argument order; missing kinds are treated as empty.
func New(sections ...*Section) *Catalog {
	c := &Catalog{
		sections: make(map[model.Kind]*Section, len(model.Kinds)),
		index:    make(map[model.ProductKey]model.Product),
	}

	for _, s := range sections {
		c.sections[s.Kind] = s
	}

	for _, kind := range model.Kinds {
		s, ok := c.sections[kind]
		if !ok {
			s = &Section{Kind: kind, Categories: []string{}, Products: []model.Product{}}
			c.sections[kind] = s
		}
		for _, p := range s.Products {
			c.all = append(c.all, p)
			c.index[p.Key()] = p
		}
	}

	return c
}

// All returns every product: cakes first, then sweets, each in declaration
// order. Callers must not modify the returned slice.
func (c *Catalog) All() []model.Product {
	return c.all
}

// Products returns the products of one kind in declaration order.
func (c *Catalog) Products(kind model.Kind) []model.Product {
	if s, ok := c.sections[kind]; ok {
		return s.Products
	}
	return []model.Product{}
}

// Categories returns the filter labels for kind, starting with model.CategoryAll.
func (c *Catalog) Categories(kind model.Kind) []string {
	labels := []string{model.CategoryAll}
	if s, ok := c.sections[kind]; ok {
		labels = append(labels, s.Categories...)
	}
	return labels
}

// Get looks up a product by key.
func (c *Catalog) Get(key model.ProductKey) (model.Product, bool) {
	p, ok := c.index[key]
	return p, ok
}

// Featured returns the featured products in display order, skipping picks
// that are not in the catalogue.
func (c *Catalog) Featured() []model.Product {
	featured := make([]model.Product, 0, len(FeaturedKeys))
	for _, key := range FeaturedKeys {
		if p, ok := c.index[key]; ok {
			featured = append(featured, p)
		}
	}
	return featured
}

// Size returns the number of products.
func (c *Catalog) Size() int {
	return len(c.all)
}
