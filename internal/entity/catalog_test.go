package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return NewCatalog([]Product{
		{Name: "Coconut Oil", Price: 250},
		{Name: "Virgin Coconut Oil", Price: 420},
		{Name: "Turmeric Powder", Price: 90},
		{Name: "Widget", Price: 100},
	})
}

func TestResolveExactCaseInsensitive(t *testing.T) {
	c := testCatalog()

	p, ok := c.Resolve("widget")
	require.True(t, ok)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 100.0, p.Price)

	p, ok = c.Resolve("  TURMERIC POWDER  ")
	require.True(t, ok)
	assert.Equal(t, 90.0, p.Price)
}

func TestResolveRejectsPartialAndEmpty(t *testing.T) {
	c := testCatalog()

	_, ok := c.Resolve("Coconut") // substring, not exact
	assert.False(t, ok)

	_, ok = c.Resolve("")
	assert.False(t, ok)

	_, ok = c.Resolve("   ")
	assert.False(t, ok)
}

func TestResolveOnEmptyCatalog(t *testing.T) {
	c := NewCatalog(nil)
	_, ok := c.Resolve("Widget")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSearchSubstringInCatalogOrder(t *testing.T) {
	c := testCatalog()

	got := c.Search("coconut")
	require.Len(t, got, 2)
	assert.Equal(t, "Coconut Oil", got[0].Name)
	assert.Equal(t, "Virgin Coconut Oil", got[1].Name)

	assert.Len(t, c.Search("OIL"), 2)
	assert.Empty(t, c.Search("mango"))
	assert.Empty(t, c.Search("  "))
}

func TestSearchCap(t *testing.T) {
	products := make([]Product, MaxSuggestions+10)
	for i := range products {
		products[i] = Product{Name: fmt.Sprintf("Herbal Tea %d", i), Price: float64(i)}
	}
	c := NewCatalog(products)

	got := c.Search("herbal")
	assert.Len(t, got, MaxSuggestions)
	// catalog order, first MaxSuggestions entries
	assert.Equal(t, "Herbal Tea 0", got[0].Name)
}
