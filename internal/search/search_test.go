package search

import (
	"testing"

	"aesthetic-cakes/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var catalog = []model.Product{
	{ID: 1, Kind: model.KindCake, Name: "Classic Wedding Cake", Description: "Three tiers of vanilla sponge", Category: "Wedding"},
	{ID: 2, Kind: model.KindCake, Name: "Chocolate Truffle Cake", Description: "Dark ganache and truffles", Category: "Classic"},
	{ID: 3, Kind: model.KindCake, Name: "Rainbow Party Cake", Description: "Topped with pastel macaron shells", Category: "Birthday"},
	{ID: 1, Kind: model.KindSweet, Name: "Classic Chocolate Brownies", Description: "Fudgy squares", Category: "Brownies"},
	{ID: 2, Kind: model.KindSweet, Name: "French Macarons", Description: "Almond meringue sandwiches", Category: "Cookies"},
	{ID: 3, Kind: model.KindSweet, Name: "Chocolate Chip Cookies", Description: "Crisp edges, soft centres", Category: "Cookies"},
	{ID: 4, Kind: model.KindSweet, Name: "Raspberry Mousse", Description: "Light and tart", Category: "Mousses"},
}

func keys(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Key().String()
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "Empty query returns nothing",
			query:    "",
			expected: []string{},
		},
		{
			name:     "Matches name and description case-insensitively in catalogue order",
			query:    "macaron",
			expected: []string{"cake-3", "sweet-2"},
		},
		{
			name:     "Upper-case query",
			query:    "CHOCOLATE",
			expected: []string{"cake-2", "sweet-1", "sweet-3"},
		},
		{
			name:     "Matches category",
			query:    "cookies",
			expected: []string{"sweet-2", "sweet-3"},
		},
		{
			name:     "Substring inside a word",
			query:    "ous",
			expected: []string{"sweet-4"},
		},
		{
			name:     "No match",
			query:    "pavlova",
			expected: []string{},
		},
		{
			name:     "Whitespace is significant",
			query:    " ",
			expected: []string{"cake-1", "cake-2", "cake-3", "sweet-1", "sweet-2", "sweet-3", "sweet-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys(Search(tt.query, catalog))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearch_EmptyQueryAnyCatalog(t *testing.T) {
	for _, c := range [][]model.Product{nil, {}, catalog} {
		results := Search("", c)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestSearch_DoesNotMutateCatalog(t *testing.T) {
	before := append([]model.Product(nil), catalog...)

	_ = Search("cake", catalog)

	assert.Equal(t, before, catalog)
}

func TestFilterByCategory(t *testing.T) {
	sweets := catalog[3:]

	tests := []struct {
		name     string
		category string
		items    []model.Product
		expected []string
	}{
		{
			name:     "All is identity",
			category: model.CategoryAll,
			items:    sweets,
			expected: []string{"sweet-1", "sweet-2", "sweet-3", "sweet-4"},
		},
		{
			name:     "Cookies keeps order",
			category: "Cookies",
			items:    sweets,
			expected: []string{"sweet-2", "sweet-3"},
		},
		{
			name:     "Exact label match only",
			category: "cookies",
			items:    sweets,
			expected: []string{},
		},
		{
			name:     "Unknown category",
			category: "Pies",
			items:    sweets,
			expected: []string{},
		},
		{
			name:     "Empty input",
			category: "Cookies",
			items:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys(FilterByCategory(tt.category, tt.items))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FilterByCategory(%q) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestFilterByCategory_AllReturnsSameSlice(t *testing.T) {
	for _, items := range [][]model.Product{nil, {}, catalog} {
		assert.Equal(t, items, FilterByCategory(model.CategoryAll, items))
	}
}
