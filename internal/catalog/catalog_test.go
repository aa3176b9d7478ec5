package catalog

import (
	"context"
	"testing"

	"aesthetic-cakes/internal/model"
	"aesthetic-cakes/internal/search"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEmbedded(t *testing.T) *Catalog {
	t.Helper()

	c, err := Load(context.Background(), NewEmbeddedLoader(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestLoad_Embedded(t *testing.T) {
	c := loadEmbedded(t)

	cakes := c.Products(model.KindCake)
	sweets := c.Products(model.KindSweet)
	require.NotEmpty(t, cakes)
	require.NotEmpty(t, sweets)
	assert.Equal(t, len(cakes)+len(sweets), c.Size())

	all := c.All()
	for i, p := range all {
		if i < len(cakes) {
			assert.Equal(t, model.KindCake, p.Kind, "cakes come first")
		} else {
			assert.Equal(t, model.KindSweet, p.Kind)
		}
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Price)
		assert.NotEmpty(t, p.Image)
	}

	assert.Equal(t, "Classic Wedding Cake", cakes[0].Name)
	assert.Equal(t, "Classic Chocolate Brownies", sweets[0].Name)
}

func TestCatalog_Categories(t *testing.T) {
	c := loadEmbedded(t)

	assert.Equal(t,
		[]string{"All", "Wedding", "Birthday", "Kids", "Classic", "Specialty", "Modern"},
		c.Categories(model.KindCake))
	assert.Equal(t,
		[]string{"All", "Brownies", "Cookies", "Mousses"},
		c.Categories(model.KindSweet))

	for _, kind := range model.Kinds {
		declared := map[string]bool{}
		for _, label := range c.Categories(kind) {
			declared[label] = true
		}
		for _, p := range c.Products(kind) {
			assert.True(t, declared[p.Category], "%s uses undeclared category %q", p.Key(), p.Category)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	c := loadEmbedded(t)

	p, ok := c.Get(model.ProductKey{Kind: model.KindSweet, ID: 2})
	require.True(t, ok)
	assert.Equal(t, "French Macarons", p.Name)

	cake, ok := c.Get(model.ProductKey{Kind: model.KindCake, ID: 2})
	require.True(t, ok)
	assert.NotEqual(t, p.Name, cake.Name, "ids are scoped by kind")

	_, ok = c.Get(model.ProductKey{Kind: model.KindCake, ID: 999})
	assert.False(t, ok)
}

func TestCatalog_Featured(t *testing.T) {
	c := loadEmbedded(t)

	featured := c.Featured()

	names := make([]string, len(featured))
	for i, p := range featured {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"Classic Wedding Cake",
		"Classic Chocolate Brownies",
		"Mirror Glaze Galaxy Cake",
		"French Macarons",
		"Chocolate Truffle Cake",
		"Geometric Gold Cake",
	}, names)
}

func TestCatalog_FeaturedSkipsMissing(t *testing.T) {
	c := New(&Section{
		Kind:     model.KindCake,
		Products: []model.Product{{ID: 3, Kind: model.KindCake, Name: "Chocolate Truffle Cake"}},
	})

	featured := c.Featured()

	require.Len(t, featured, 1)
	assert.Equal(t, 3, featured[0].ID)
}

func TestCatalog_MissingSectionIsEmpty(t *testing.T) {
	c := New()

	assert.Empty(t, c.All())
	assert.NotNil(t, c.Products(model.KindSweet))
	assert.Equal(t, []string{model.CategoryAll}, c.Categories(model.KindSweet))
}

func TestCatalog_SearchMacaron(t *testing.T) {
	c := loadEmbedded(t)

	results := search.Search("macaron", c.All())

	require.Len(t, results, 1)
	assert.Equal(t, model.ProductKey{Kind: model.KindSweet, ID: 2}, results[0].Key())
}

func TestCatalog_FilterCookies(t *testing.T) {
	c := loadEmbedded(t)

	cookies := search.FilterByCategory("Cookies", c.Products(model.KindSweet))

	require.NotEmpty(t, cookies)
	prev := 0
	for _, p := range cookies {
		assert.Equal(t, "Cookies", p.Category)
		assert.Greater(t, p.ID, prev, "declaration order is kept")
		prev = p.ID
	}
}
