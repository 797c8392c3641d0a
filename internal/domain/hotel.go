package domain

import "time"

// Hotel is a document from the hotels collection. Prices are stored in the
// base currency (USD); display copies are converted on the way out.
type Hotel struct {
	ID          string
	Name        string
	City        string
	PriceUSD    float64
	Category    int // stars, 1..5
	Description string
	Photos      []string
	Reviews     []Review
	Address     *string
	Lat, Lon    *float64
	CreatedAt   time.Time
}

// ResolvedHotel is a Hotel plus the per-response fields the assistant
// computes. Never persisted: built by the query executor, consumed by the
// formatter, discarded with the reply.
type ResolvedHotel struct {
	Hotel
	AverageRating float64
	ReviewSummary string
	DisplayPrice  string
	TopReviews    []Review // at most 3, only for 5-star hotels with reviews
}
