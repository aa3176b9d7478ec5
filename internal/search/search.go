// Package search implements the storefront's catalogue queries: free-text
// search and category filtering. Both are pure functions over product
// sequences and preserve input order.
package search

import (
	"strings"

	"aesthetic-cakes/internal/model"
)

// Search returns the products whose name, description or category contains
// query, compared case-insensitively, in catalogue order. An empty query
// matches nothing.
func Search(query string, catalog []model.Product) []model.Product {
	results := []model.Product{}
	if query == "" {
		return results
	}

	needle := strings.ToLower(query)
	for _, p := range catalog {
		if matches(p, needle) {
			results = append(results, p)
		}
	}
	return results
}

func matches(p model.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// FilterByCategory returns the items in category, in order. The label
// model.CategoryAll returns items unchanged.
func FilterByCategory(category string, items []model.Product) []model.Product {
	if category == model.CategoryAll {
		return items
	}

	filtered := []model.Product{}
	for _, p := range items {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
