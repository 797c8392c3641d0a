package assistant

import (
	"fmt"
	"strings"

	"stayfinder/internal/currency"
	"stayfinder/internal/domain"
)

// formatResults renders a non-empty result set in the chat widget's inline
// markup: one bullet per hotel, computed fields inline, a conversion
// summary when the user typed a bound in a non-base currency, and a
// follow-up nudge.
func formatResults(loc Locale, f domain.SearchFilter, hotels []domain.ResolvedHotel) string {
	lines := []string{tr(loc, "results_header")}
	for _, h := range hotels {
		link := fmt.Sprintf("/search/hotel/%s", h.ID)
		lines = append(lines, fmt.Sprintf(
			"• <strong>%s</strong> (%s)<br>  %d %s | %s<br>  %s<br>  <a href='%s' target='_blank'>%s</a>",
			h.Name, h.City, h.Category, tr(loc, "stars_word"), h.DisplayPrice,
			h.ReviewSummary, link, tr(loc, "hotel_link"),
		))
		for i, rv := range h.TopReviews {
			if i == 0 {
				lines = append(lines, "  <em>"+tr(loc, "top_reviews")+"</em>")
			}
			lines = append(lines, fmt.Sprintf("  <em>«%s» — %s</em>", rv.Text, rv.User))
		}
	}
	if summary := conversionSummary(f); summary != "" {
		lines = append(lines, summary)
	}
	lines = append(lines, tr(loc, "results_footer"))
	return strings.Join(lines, "<br>")
}

// conversionSummary shows what the typed amount means in base units, e.g.
// "50.00 € ≈ 58.82 $". Empty when no bound was typed or it was already in
// the base currency.
func conversionSummary(f domain.SearchFilter) string {
	if f.Currency == currency.Base {
		return ""
	}
	var amount float64
	switch {
	case f.MaxPrice != nil:
		amount = *f.MaxPrice
	case f.MinPrice != nil:
		amount = *f.MinPrice
	default:
		return ""
	}
	return fmt.Sprintf("<em>%.2f %s ≈ %.2f %s</em>",
		amount, currency.SymbolOf(f.Currency),
		currency.Convert(amount, f.Currency, currency.Base), currency.SymbolOf(currency.Base))
}
