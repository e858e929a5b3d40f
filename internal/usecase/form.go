package usecase

import (
	"errors"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
)

// MaxRows caps the number of product rows on one order.
const MaxRows = 20

var ErrTooManyRows = errors.New("maximum product rows reached")

// Form owns the ordered row collection and the derived grand total. A new
// form carries a single empty row; the shared catalog is read-only.
type Form struct {
	catalog domain.Catalog
	rows    []*Row
}

func NewForm(catalog domain.Catalog) *Form {
	return &Form{
		catalog: catalog,
		rows:    []*Row{newRow(catalog)},
	}
}

func (f *Form) Rows() []*Row { return f.rows }

func (f *Form) RowCount() int { return len(f.rows) }

// AddRow appends a fresh row, refusing past MaxRows with no state change.
func (f *Form) AddRow() (*Row, error) {
	if len(f.rows) >= MaxRows {
		return nil, ErrTooManyRows
	}
	r := newRow(f.catalog)
	f.rows = append(f.rows, r)
	return r, nil
}

// LineItems collects the current non-nil line items in row order.
func (f *Form) LineItems() []domain.LineItem {
	var items []domain.LineItem
	for _, r := range f.rows {
		if item := r.LineItem(); item != nil {
			items = append(items, *item)
		}
	}
	return items
}

// Total recomputes the grand total from scratch on every call; it is a pure
// function of the current row state, never a cached value.
func (f *Form) Total() float64 {
	var total float64
	for _, item := range f.LineItems() {
		total += item.LineTotal
	}
	return total
}

// Reset discards every row and reinitializes a single empty one, as after a
// confirmed order.
func (f *Form) Reset() {
	f.rows = []*Row{newRow(f.catalog)}
}
