package domain

// SearchFilter is what the intent extractor produces from free text.
// Price bounds are denominated in Currency; the executor converts them to
// base units before they reach the store. Fields are independently optional:
// an unset bound is indistinguishable from "not requested".
//
// MinStars <= MaxStars is not enforced; a contradictory filter simply
// matches nothing.
type SearchFilter struct {
	MinPrice        *float64
	MaxPrice        *float64
	Currency        string
	MinStars        *int
	MaxStars        *int
	City            string
	WantGoodReviews bool
	WantNoReviews   bool
}

// HotelsQuery is the store-level predicate: price bounds already in base
// currency, city already resolved. This is the only shape the repository
// understands.
type HotelsQuery struct {
	City        string // exact match, case-insensitive; empty means any
	MinPriceUSD *float64
	MaxPriceUSD *float64
	MinStars    *int
	MaxStars    *int
	NoReviews   bool
	Limit       int
}
