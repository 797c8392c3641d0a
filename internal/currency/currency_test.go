package currency_test

import (
	"math"
	"testing"

	"stayfinder/internal/currency"
)

func TestConvert_RoundTrip(t *testing.T) {
	codes := []string{"usd", "eur", "uah", "rub", "mdl", "ron"}
	for _, from := range codes {
		for _, to := range codes {
			got := currency.Convert(currency.Convert(100, from, to), to, from)
			if from == to {
				if got != 100 {
					t.Fatalf("identity %s: got %v", from, got)
				}
				continue
			}
			// each leg rounds to cents, so the drift scales with the
			// source currency's rate (e.g. 100 uah -> 2.43 usd -> 100.09)
			tol := 0.01*currency.RateOf(from) + 0.01
			if math.Abs(got-100) > tol {
				t.Fatalf("round-trip %s->%s->%s: got %v (tol %v)", from, to, from, got, tol)
			}
		}
	}
}

func TestConvert_UnknownCodePassthrough(t *testing.T) {
	if got := currency.Convert(42.5, "xyz", "usd"); got != 42.5 {
		t.Fatalf("unknown from: got %v", got)
	}
	if got := currency.Convert(42.5, "usd", "xyz"); got != 42.5 {
		t.Fatalf("unknown to: got %v", got)
	}
}

func TestSoftDefaults(t *testing.T) {
	if currency.RateOf("nope") != 1 {
		t.Fatalf("RateOf should default to base rate")
	}
	if currency.SymbolOf("nope") != "$" {
		t.Fatalf("SymbolOf should default to base symbol")
	}
	if currency.Known("nope") {
		t.Fatalf("Known(nope) = true")
	}
	if !currency.Known("mdl") {
		t.Fatalf("Known(mdl) = false")
	}
}

func TestConvert_KnownPair(t *testing.T) {
	// 50 EUR -> USD at 0.85 EUR per USD
	if got := currency.Convert(50, "eur", "usd"); got != 58.82 {
		t.Fatalf("50 eur -> usd: got %v, want 58.82", got)
	}
}
