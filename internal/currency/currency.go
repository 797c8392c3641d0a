// Package currency holds the static exchange table used for display prices
// and for normalizing user-typed price bounds. Rates are "units per 1 USD",
// loaded once and immutable at runtime.
package currency

import "math"

// Base is the currency all stored hotel prices are denominated in.
const Base = "usd"

type Rate struct {
	Symbol string
	Rate   float64 // units of this currency per 1 USD
}

var table = map[string]Rate{
	"eur": {Symbol: "€", Rate: 0.85},
	"uah": {Symbol: "₴", Rate: 41.19},
	"rub": {Symbol: "₽", Rate: 83.24},
	"usd": {Symbol: "$", Rate: 1},
	"mdl": {Symbol: "L", Rate: 16.45},
	"ron": {Symbol: "lei", Rate: 4.27},
}

// Known reports whether code is in the table. The convert/symbol helpers
// fail soft on unknown codes; callers that must reject them (the extractor's
// currency gate) check here first.
func Known(code string) bool {
	_, ok := table[code]
	return ok
}

// RateOf returns the exchange rate for code, defaulting to the base
// currency's rate when the code is unknown.
func RateOf(code string) float64 {
	if r, ok := table[code]; ok {
		return r.Rate
	}
	return table[Base].Rate
}

// SymbolOf returns the display symbol for code, defaulting to the base
// currency's symbol when the code is unknown.
func SymbolOf(code string) string {
	if r, ok := table[code]; ok {
		return r.Symbol
	}
	return table[Base].Symbol
}

// Convert converts amount between two currencies, rounded to 2 decimals.
// If either code is unknown the amount is returned unchanged: unknown codes
// typed by users must not error out the pipeline.
func Convert(amount float64, from, to string) float64 {
	if !Known(from) || !Known(to) {
		return amount
	}
	return math.Round(amount/RateOf(from)*RateOf(to)*100) / 100
}
