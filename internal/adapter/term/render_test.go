package term

import (
	"testing"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
	"github.com/Sharaj17/thottam-IQ/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹0", FormatPrice(0))
	assert.Equal(t, "₹100", FormatPrice(100))
	assert.Equal(t, "₹100", FormatPrice(99.5))
	assert.Equal(t, "₹99", FormatPrice(99.4))
	assert.Equal(t, "₹300", FormatPrice(300.0))
}

func TestRenderSuggestionsHidden(t *testing.T) {
	assert.Empty(t, RenderSuggestions(usecase.Suggestions{}))
}

func TestRenderSuggestionsPlaceholder(t *testing.T) {
	out := RenderSuggestions(usecase.Suggestions{Visible: true})
	assert.Contains(t, out, "No products found")
}

func TestRenderSuggestionsList(t *testing.T) {
	out := RenderSuggestions(usecase.Suggestions{
		Visible: true,
		Products: []domain.Product{
			{Name: "Widget", Price: 100},
			{Name: "Widget Deluxe", Price: 180},
		},
	})
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "Widget Deluxe")
	assert.Contains(t, out, "₹180")
}

func TestRenderConfirmationShowsOrderNumber(t *testing.T) {
	out := RenderConfirmation("THO-5")
	assert.Contains(t, out, "Order placed!")
	assert.Contains(t, out, "THO-5")
}

func TestRenderTotals(t *testing.T) {
	assert.Contains(t, RenderTotal(300), "₹300")
	assert.Contains(t, RenderRowPrice(150), "₹150")
}
