package assistant_test

import (
	"context"
	"errors"

	"stayfinder/internal/domain"
)

// fakeRepo is the in-memory hotel store used across the assistant tests.
// It records the last query so conversion and capping can be asserted.
type fakeRepo struct {
	hotels []domain.Hotel
	cities []string
	err    error

	lastQuery *domain.HotelsQuery
}

var errStoreDown = errors.New("store down")

func (f *fakeRepo) FindHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	f.lastQuery = &q
	if f.err != nil {
		return nil, f.err
	}
	out := f.hotels
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeRepo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

func (f *fakeRepo) DistinctCities(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cities, nil
}

func (f *fakeRepo) InsertHotel(ctx context.Context, h domain.Hotel) (string, error) {
	f.hotels = append(f.hotels, h)
	return h.ID, nil
}

func pfloat(f float64) *float64 { return &f }
func pint(i int) *int           { return &i }
