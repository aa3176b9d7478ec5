// Package catalog loads and serves the bakery's read-only product
// catalogue. Sections (one per kind) are stored as YAML documents, either
// embedded in the binary, on the local file system, in S3 or in PostgreSQL.
package catalog

import (
	"fmt"
	"io"

	"aesthetic-cakes/internal/model"

	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a section file.
type document struct {
	Kind       model.Kind      `yaml:"kind"`
	Categories []string        `yaml:"categories"`
	Products   []model.Product `yaml:"products"`
}

// FileName returns the base file name of kind's section, e.g. "cakes.yaml".
func FileName(kind model.Kind) string {
	return string(kind) + "s.yaml"
}

// ArchiveName returns the gzipped file name of kind's section.
func ArchiveName(kind model.Kind) string {
	return FileName(kind) + ".gz"
}

// Decode reads a YAML section document and validates it against kind.
func Decode(r io.Reader, kind model.Kind) (*Section, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s section: %w", kind, err)
	}

	if doc.Kind != "" && doc.Kind != kind {
		return nil, fmt.Errorf("section declares kind %q, expected %q", doc.Kind, kind)
	}

	return NewSection(kind, doc.Categories, doc.Products)
}

// Encode writes s as a YAML section document.
func Encode(w io.Writer, s *Section) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	doc := document{
		Kind:       s.Kind,
		Categories: s.Categories,
		Products:   s.Products,
	}
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode %s section: %w", s.Kind, err)
	}
	return enc.Close()
}

// NewSection validates products and stamps them with kind. When categories
// is empty the labels are derived from the products in order of first
// appearance.
func NewSection(kind model.Kind, categories []string, products []model.Product) (*Section, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown product kind %q", kind)
	}

	seen := make(map[int]struct{}, len(products))
	stamped := make([]model.Product, 0, len(products))
	for i, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("%s product %d: name is required", kind, i)
		}
		if p.ID < 0 {
			return nil, fmt.Errorf("%s product %q: id must not be negative", kind, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%s product %q: duplicate id %d", kind, p.Name, p.ID)
		}
		seen[p.ID] = struct{}{}

		p.Kind = kind
		stamped = append(stamped, p)
	}

	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != model.CategoryAll {
			labels = append(labels, c)
		}
	}
	if len(labels) == 0 {
		known := make(map[string]struct{})
		for _, p := range stamped {
			if _, ok := known[p.Category]; !ok && p.Category != "" {
				known[p.Category] = struct{}{}
				labels = append(labels, p.Category)
			}
		}
	}

	return &Section{
		Kind:       kind,
		Categories: labels,
		Products:   stamped,
	}, nil
}
