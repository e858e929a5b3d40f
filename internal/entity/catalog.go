package domain

import "strings"

const (
	// MinQueryLen is the shortest trimmed search text that produces suggestions.
	MinQueryLen = 2
	// MaxSuggestions caps one suggestion list.
	MaxSuggestions = 50
)

// Product is one purchasable item from the storefront catalog.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is the session's product list, loaded once and read-only after
// that. The zero Catalog behaves like an empty one.
type Catalog struct {
	products []Product
}

func NewCatalog(products []Product) Catalog {
	return Catalog{products: products}
}

func (c Catalog) Len() int { return len(c.products) }

// Products returns the catalog in source order. Callers must not mutate it.
func (c Catalog) Products() []Product { return c.products }

// Resolve matches text to a product by case-insensitive exact name equality,
// ignoring surrounding whitespace. This is the only way a row's free text
// binds to a price.
func (c Catalog) Resolve(text string) (Product, bool) {
	name := strings.TrimSpace(text)
	if name == "" {
		return Product{}, false
	}
	for _, p := range c.products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}

// Search returns up to MaxSuggestions products whose names contain the
// trimmed query case-insensitively, in catalog order (no ranking). Callers
// enforce MinQueryLen; an empty query matches nothing.
func (c Catalog) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}
