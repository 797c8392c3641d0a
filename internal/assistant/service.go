// Package assistant implements the rule-based hotel query assistant:
// language detection, intent classification, entity extraction, query
// execution against the hotel store, and localized reply formatting.
//
// Per-message processing is a single synchronous chain with no shared
// mutable state beyond the read-only city vocabulary snapshot, so the
// service is safe under the concurrent request handler without locking.
package assistant

import (
	"context"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

type Service struct {
	repo   domain.HotelRepository
	cities *CityResolver
	ex     Extractor
}

func NewService(repo domain.HotelRepository) *Service {
	cities := NewCityResolver(repo)
	return &Service{repo: repo, cities: cities, ex: Extractor{Cities: cities}}
}

// Cities exposes the vocabulary resolver so main can take the startup
// snapshot (and operators can wire a periodic refresh if they want one).
func (s *Service) Cities() *CityResolver { return s.cities }

// Reply runs the full pipeline for one message and returns the reply
// markup. lang is the user's profile language; detection from the message
// text overrides it when the signal is strong enough.
func (s *Service) Reply(ctx context.Context, message string, lang Locale) string {
	loc := lang
	if !ValidLocale(loc) {
		loc = LocaleEng
	}

	switch detected := DetectLanguage(message); {
	case detected == LocaleUnsupported:
		// No translated strings past this point for that script; bail
		// before intent classification.
		observability.ObserveIntent("unsupported_language", string(loc))
		return tr(loc, "lang_unsupported")
	case ValidLocale(detected):
		loc = detected
	}

	intent := s.ex.Extract(message, loc)
	observability.ObserveIntent(intent.Kind.String(), string(loc))

	switch intent.Kind {
	case IntentShowExamples:
		return tr(loc, "examples")
	case IntentGreeting:
		return tr(loc, "greeting")
	case IntentContactSupport:
		return tr(loc, "support")
	case IntentUnknownCurrency:
		return tr(loc, "currency_error")
	case IntentHotelSearch:
		res := s.executeSearch(ctx, intent.Filter, loc)
		if len(res.Hotels) == 0 {
			return tr(loc, "no_results")
		}
		return formatResults(loc, intent.Filter, res.Hotels)
	default:
		return tr(loc, "unrecognized")
	}
}

// GenericError is the boundary's reply when the pipeline panics on
// malformed input; the process must never die over one message.
func GenericError(lang Locale) string {
	if !ValidLocale(lang) {
		lang = LocaleEng
	}
	return tr(lang, "generic_error")
}
