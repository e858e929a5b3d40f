package usecase

import (
	"strings"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
)

// Suggestions is the current autocomplete state for one row. Visible with an
// empty Products slice means the "no products found" placeholder.
type Suggestions struct {
	Visible  bool
	Products []domain.Product
}

// Row is one product line on the order form. It reads the shared catalog and
// derives its price fresh on every query: no cached selection is trusted once
// the search text has moved on, the text alone decides what the row resolves
// to.
type Row struct {
	catalog     domain.Catalog
	search      string
	quantity    int
	suggestions Suggestions
}

func newRow(catalog domain.Catalog) *Row {
	return &Row{catalog: catalog, quantity: 1}
}

// SetSearchText updates the row's search text and recomputes the suggestion
// list: hidden below MinQueryLen, otherwise a capped substring match over the
// catalog in catalog order.
func (r *Row) SetSearchText(text string) Suggestions {
	r.search = text
	q := strings.TrimSpace(text)
	if len(q) < domain.MinQueryLen {
		r.suggestions = Suggestions{}
		return r.suggestions
	}
	r.suggestions = Suggestions{Visible: true, Products: r.catalog.Search(q)}
	return r.suggestions
}

// SelectSuggestion commits a suggested product: the search text becomes the
// exact catalog name, so the row resolves by name equality from here on.
func (r *Row) SelectSuggestion(p domain.Product) {
	r.search = p.Name
	r.suggestions = Suggestions{}
}

// HideSuggestions dismisses the list, as when interaction leaves the row.
func (r *Row) HideSuggestions() { r.suggestions = Suggestions{} }

func (r *Row) Suggestions() Suggestions { return r.suggestions }

func (r *Row) SearchText() string { return r.search }

// SetQuantity coerces raw input to an integer >= 1 before storing it.
func (r *Row) SetQuantity(raw string) {
	r.quantity = domain.CoerceQuantity(raw)
}

func (r *Row) Quantity() int { return r.quantity }

// LineItem derives the row's current line item, resolving the product from
// the search text on every call. Nil when the trimmed text is empty. A name
// that matches nothing prices at 0 but still belongs to the order, exactly as
// the storefront submits it.
func (r *Row) LineItem() *domain.LineItem {
	name := strings.TrimSpace(r.search)
	if name == "" {
		return nil
	}
	var unit float64
	if p, ok := r.catalog.Resolve(name); ok {
		unit = p.Price
	}
	return &domain.LineItem{
		Name:      name,
		Quantity:  r.quantity,
		UnitPrice: unit,
		LineTotal: unit * float64(r.quantity),
	}
}

// LineTotal is the row's displayed price: the derived line total, or 0 when
// the row has no line item.
func (r *Row) LineTotal() float64 {
	if item := r.LineItem(); item != nil {
		return item.LineTotal
	}
	return 0
}
