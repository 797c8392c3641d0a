package assistant

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/domain"
)

// cityAliases maps common misspellings and transliterations (normalized
// form) to the canonical city name stored in the hotels collection.
var cityAliases = map[string]string{
	"кишинёв":   "Chișinău",
	"кишинев":   "Chișinău",
	"chisinau":  "Chișinău",
	"кишиневв":  "Chișinău",
	"кишинёвв":  "Chișinău",
	"кишиневе":  "Chișinău",
	"кишинёве":  "Chișinău",
	"бухарест":  "București",
	"bucuresti": "București",
	"бухаресте": "București",
	"яссы":      "Iași",
	"iasi":      "Iași",
	"ясси":      "Iași",
	"брашов":    "Brașov",
	"brasov":    "Brașov",
	"брашове":   "Brașov",
	"констанца": "Constanța",
	"constanta": "Constanța",
	"констанце": "Constanța",
}

// CityResolver matches free-text city mentions against the live set of
// distinct city names in the store. The snapshot is taken on Refresh
// (startup in practice); cities added afterwards stay invisible to fuzzy
// matching until the next refresh. That staleness window is part of the
// contract, not a bug.
type CityResolver struct {
	repo domain.HotelRepository

	mu       sync.RWMutex
	snapshot []string // insertion order of the store's distinct listing
}

func NewCityResolver(repo domain.HotelRepository) *CityResolver {
	return &CityResolver{repo: repo}
}

// Refresh replaces the vocabulary snapshot from the store. Matching keeps
// working on the previous snapshot if the store is unreachable.
func (c *CityResolver) Refresh(ctx context.Context) error {
	cities, err := c.repo.DistinctCities(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.snapshot = cities
	c.mu.Unlock()
	log.Info().Int("cities", len(cities)).Msg("city vocabulary refreshed")
	return nil
}

// Resolve maps input to a canonical city name, or "" when nothing matches.
// Alias table first (exact hit on the normalized form), then a linear scan
// of the snapshot for the first entry where one normalized name contains
// the other. Best-effort substring matching, not ranked fuzzy search.
func (c *CityResolver) Resolve(input string) string {
	norm := normalizeCity(input)
	if norm == "" {
		return ""
	}
	if canonical, ok := cityAliases[norm]; ok {
		return canonical
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, candidate := range c.snapshot {
		nc := normalizeCity(candidate)
		if nc == "" {
			continue
		}
		if strings.Contains(nc, norm) || strings.Contains(norm, nc) {
			return candidate
		}
	}
	return ""
}

// normalizeCity lower-cases and strips everything that is not a letter,
// digit or space, then trims.
func normalizeCity(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
