package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/Sharaj17/thottam-IQ/internal/usecase"
)

// FormatPrice renders a rupee amount the way the storefront does: rounded to
// the nearest whole rupee.
func FormatPrice(v float64) string {
	return fmt.Sprintf("₹%d", int64(math.Round(v)))
}

// RenderSuggestions renders the numbered autocomplete list for one row, or
// the "No products found" placeholder. Empty string when the list is hidden.
func RenderSuggestions(s usecase.Suggestions) string {
	if !s.Visible {
		return ""
	}
	if len(s.Products) == 0 {
		return dimStyle.Render("No products found")
	}
	var b strings.Builder
	for i, p := range s.Products {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			suggestionStyle.Render(p.Name),
			dimStyle.Render(FormatPrice(p.Price)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderRowPrice(v float64) string {
	return "Price: " + priceStyle.Render(FormatPrice(v))
}

func RenderTotal(total float64) string {
	return "Total: " + priceStyle.Render(FormatPrice(total))
}

// RenderConfirmation is the order-placed box with the backend's number.
func RenderConfirmation(orderNumber string) string {
	return boxStyle.Render(
		titleStyle.Render("Order placed!") + "\n" +
			"Order number: " + priceStyle.Render(orderNumber),
	)
}

func RenderError(msg string) string { return errorStyle.Render(msg) }

func RenderWarning(msg string) string { return warnStyle.Render(msg) }
