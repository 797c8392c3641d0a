package app

import (
	"context"
	"fmt"
	"time"

	"stayfinder/internal/domain"
)

// QueryService serves the hotel read API with a cache-aside layer in front
// of the store. The chat assistant talks to the repository directly; its
// result cap and filters make caching pointless there.
type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := fmt.Sprintf("hotel:%s", id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *QueryService) ListCities(ctx context.Context) ([]string, error) {
	const key = "cities"
	var cities []string
	if ok, _ := s.cache.Get(ctx, key, &cities); ok {
		return cities, nil
	}
	cities, err := s.repo.DistinctCities(ctx)
	if err != nil {
		return nil, err
	}
	// copy to avoid aliasing the repo's backing array into the fake caches
	// used in tests
	cached := append([]string(nil), cities...)
	_ = s.cache.Set(ctx, key, cached, int(s.cacheTTL.Seconds()))
	return cached, nil
}

// SearchHotels is an uncached passthrough: the predicate space is too wide
// for keyed caching to ever hit.
func (s *QueryService) SearchHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	return s.repo.FindHotels(ctx, q)
}
