package assistant

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/currency"
	"stayfinder/internal/domain"
)

// maxResults caps a chat reply. A UX choice, not pagination: there is no
// "next page" in a chat bubble.
const maxResults = 5

const goodReviewThreshold = 4.0

// SearchResult distinguishes an empty result from an unreachable store.
// Both read the same to the user; only logs and metrics tell them apart.
type SearchResult struct {
	Hotels      []domain.ResolvedHotel
	Unavailable bool
}

// executeSearch translates the filter into a store query, runs it, and
// derives the display fields. Store failures degrade to an Unavailable
// result instead of propagating.
func (s *Service) executeSearch(ctx context.Context, f domain.SearchFilter, loc Locale) SearchResult {
	q := domain.HotelsQuery{
		City:      f.City,
		MinStars:  f.MinStars,
		MaxStars:  f.MaxStars,
		NoReviews: f.WantNoReviews,
		Limit:     maxResults,
	}
	// Stored prices are in base units; compare there.
	if f.MinPrice != nil {
		v := currency.Convert(*f.MinPrice, f.Currency, currency.Base)
		q.MinPriceUSD = &v
	}
	if f.MaxPrice != nil {
		v := currency.Convert(*f.MaxPrice, f.Currency, currency.Base)
		q.MaxPriceUSD = &v
	}

	hotels, err := s.repo.FindHotels(ctx, q)
	if err != nil {
		log.Warn().Err(err).Str("city", f.City).Msg("hotel store unreachable, degrading to empty result")
		observability.ObserveStoreUnavailable()
		return SearchResult{Unavailable: true}
	}

	resolved := make([]domain.ResolvedHotel, 0, len(hotels))
	for _, h := range hotels {
		resolved = append(resolved, resolveHotel(h, f.Currency, loc))
	}

	// Post-filter on the already-capped set. A "good" search can therefore
	// return fewer than maxResults, or none, even when more qualifying
	// hotels exist past the cap. Reproduced as documented behavior.
	if f.WantGoodReviews {
		kept := resolved[:0]
		for _, h := range resolved {
			if h.AverageRating >= goodReviewThreshold {
				kept = append(kept, h)
			}
		}
		resolved = kept
	}
	return SearchResult{Hotels: resolved}
}

func resolveHotel(h domain.Hotel, cur string, loc Locale) domain.ResolvedHotel {
	out := domain.ResolvedHotel{Hotel: h}
	out.AverageRating, out.ReviewSummary = summarizeReviews(h.Reviews, loc)
	out.DisplayPrice = fmt.Sprintf("%.2f %s",
		currency.Convert(h.PriceUSD, currency.Base, cur), currency.SymbolOf(cur))

	// "Top" is first-3-in-storage-order, not a ranking; only flagship
	// hotels surface review text inline.
	if h.Category == 5 && len(h.Reviews) > 0 {
		n := len(h.Reviews)
		if n > 3 {
			n = 3
		}
		out.TopReviews = h.Reviews[:n]
	}
	return out
}

// summarizeReviews computes the arithmetic mean of the ratings and a
// localized one-liner. Zero reviews reads as its own message, not a 0.0.
func summarizeReviews(reviews []domain.Review, loc Locale) (float64, string) {
	if len(reviews) == 0 {
		return 0, tr(loc, "no_reviews")
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := sum / float64(len(reviews))
	return avg, fmt.Sprintf(tr(loc, "rating"), avg)
}
