package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayfinder/internal/domain"
)

// Repo implements domain.HotelRepository over the hotels collection.
type Repo struct{ hotels *mongo.Collection }

func New(db *mongo.Database) *Repo {
	return &Repo{hotels: db.Collection("hotels")}
}

// FindHotels translates the query into a Mongo filter and applies the
// result cap server-side.
func (r *Repo) FindHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	filter := bson.M{}
	if q.City != "" {
		// Exact match, case-insensitive; the city has already been through
		// vocabulary resolution by the time it gets here.
		filter["city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(q.City) + "$", "$options": "i"}
	}
	price := bson.M{}
	if q.MinPriceUSD != nil {
		price["$gte"] = *q.MinPriceUSD
	}
	if q.MaxPriceUSD != nil {
		price["$lte"] = *q.MaxPriceUSD
	}
	if len(price) > 0 {
		filter["price_usd"] = price
	}
	stars := bson.M{}
	if q.MinStars != nil {
		stars["$gte"] = *q.MinStars
	}
	if q.MaxStars != nil {
		stars["$lte"] = *q.MaxStars
	}
	if len(stars) > 0 {
		filter["category"] = stars
	}
	if q.NoReviews {
		filter["$or"] = []bson.M{
			{"reviews": bson.M{"$size": 0}},
			{"reviews": bson.M{"$exists": false}},
		}
	}

	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	cursor, err := r.hotels.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]domain.Hotel, 0)
	for cursor.Next(ctx) {
		var doc hotelDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		out = append(out, mapHotelDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotels: %w", err)
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Hotel{}, domain.ErrNotFound
	}
	var doc hotelDocument
	if err := r.hotels.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, fmt.Errorf("get hotel %s: %w", id, err)
	}
	return mapHotelDocument(doc), nil
}

// DistinctCities returns the distinct city names in listing order; that
// order is what the vocabulary resolver scans, first match wins.
func (r *Repo) DistinctCities(ctx context.Context) ([]string, error) {
	values, err := r.hotels.Distinct(ctx, "city", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct cities: %w", err)
	}
	cities := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			cities = append(cities, s)
		}
	}
	return cities, nil
}

func (r *Repo) InsertHotel(ctx context.Context, h domain.Hotel) (string, error) {
	res, err := r.hotels.InsertOne(ctx, toHotelDocument(h))
	if err != nil {
		return "", fmt.Errorf("insert hotel %q: %w", h.Name, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert hotel %q: unexpected id type %T", h.Name, res.InsertedID)
	}
	return id.Hex(), nil
}
