package main

import (
	"context"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/semaphore"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
	mongorepo "stayfinder/internal/storage/mongo"
)

// starter hotel set; prices are base USD
var seedHotels = []domain.Hotel{
	{
		Name: "Hotel Luxe", City: "București", PriceUSD: 35, Category: 4,
		Description: "Luxury hotel in center",
		Photos:      []string{"photo1.jpg", "photo2.jpg"},
		Reviews:     []domain.Review{{User: "John", Text: "Great!", Rating: 5}},
	},
	{
		Name: "Budget Inn", City: "Chișinău", PriceUSD: 3, Category: 2,
		Description: "Affordable stay",
		Photos:      []string{"photo3.jpg"},
		Reviews:     []domain.Review{{User: "Anna", Text: "Ok", Rating: 3}},
	},
	{
		Name: "Sea View Resort", City: "Constanța", PriceUSD: 47, Category: 5,
		Description: "Beachfront luxury",
		Photos:      []string{"photo4.jpg", "photo5.jpg"},
		Reviews:     []domain.Review{{User: "Mike", Text: "Amazing view!", Rating: 5}},
	},
	{
		Name: "City Center Motel", City: "Iași", PriceUSD: 19, Category: 3,
		Description: "Central location",
		Photos:      []string{"photo6.jpg"},
		Reviews:     []domain.Review{{User: "Sara", Text: "Clean", Rating: 4}},
	},
	{
		Name: "Mountain Lodge", City: "Brașov", PriceUSD: 28, Category: 4,
		Description: "Cozy in mountains",
		Photos:      []string{"photo7.jpg"},
		Reviews:     []domain.Review{{User: "Tom", Text: "Peaceful", Rating: 4}},
	},
}

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("hotels", len(seedHotels)).Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mongorepo.New(client.Database(cfg.MongoDB))
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range seedHotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotel domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			id, err := repo.InsertHotel(ctx, hotel)
			if err != nil {
				log.Warn().Str("name", hotel.Name).Err(err).Msg("seed insert failed")
				return
			}
			log.Info().Str("name", hotel.Name).Str("id", id).Msg("seed ok")
		}(h)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
