package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type HotelRepository interface {
	// Read paths
	FindHotels(ctx context.Context, q HotelsQuery) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	DistinctCities(ctx context.Context) ([]string, error)

	// Write path (seeding only; the serving path never mutates hotels)
	InsertHotel(ctx context.Context, h Hotel) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
