package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stayfinder/internal/domain"
)

// hotelDocument mirrors the schema of the hotels collection. Prices are
// stored under price_usd (base currency).
type hotelDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	City        string             `bson:"city"`
	PriceUSD    float64            `bson:"price_usd"`
	Category    int                `bson:"category"`
	Description string             `bson:"description,omitempty"`
	Photos      []string           `bson:"photos,omitempty"`
	Reviews     []reviewDocument   `bson:"reviews,omitempty"`
	Address     *string            `bson:"location_address,omitempty"`
	Latitude    *float64           `bson:"latitude,omitempty"`
	Longitude   *float64           `bson:"longitude,omitempty"`
	CreatedAt   time.Time          `bson:"created_at,omitempty"`
}

type reviewDocument struct {
	User   string   `bson:"user"`
	Text   string   `bson:"text,omitempty"`
	Rating float64  `bson:"rating"`
	Photos []string `bson:"photos,omitempty"`
	Source *string  `bson:"source,omitempty"`
}

func mapHotelDocument(doc hotelDocument) domain.Hotel {
	reviews := make([]domain.Review, 0, len(doc.Reviews))
	for _, r := range doc.Reviews {
		reviews = append(reviews, domain.Review{
			User:   r.User,
			Text:   r.Text,
			Rating: r.Rating,
			Photos: append([]string{}, r.Photos...),
			Source: r.Source,
		})
	}
	return domain.Hotel{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		City:        doc.City,
		PriceUSD:    doc.PriceUSD,
		Category:    doc.Category,
		Description: doc.Description,
		Photos:      append([]string{}, doc.Photos...),
		Reviews:     reviews,
		Address:     doc.Address,
		Lat:         doc.Latitude,
		Lon:         doc.Longitude,
		CreatedAt:   doc.CreatedAt,
	}
}

func toHotelDocument(h domain.Hotel) hotelDocument {
	reviews := make([]reviewDocument, 0, len(h.Reviews))
	for _, r := range h.Reviews {
		reviews = append(reviews, reviewDocument{
			User:   r.User,
			Text:   r.Text,
			Rating: r.Rating,
			Photos: r.Photos,
			Source: r.Source,
		})
	}
	created := h.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return hotelDocument{
		Name:        h.Name,
		City:        h.City,
		PriceUSD:    h.PriceUSD,
		Category:    h.Category,
		Description: h.Description,
		Photos:      h.Photos,
		Reviews:     reviews,
		Address:     h.Address,
		Latitude:    h.Lat,
		Longitude:   h.Lon,
		CreatedAt:   created,
	}
}
