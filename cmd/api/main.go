package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	server "stayfinder/internal/adapters/http_server"
	"stayfinder/internal/adapters/observability"
	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/app"
	"stayfinder/internal/assistant"
	"stayfinder/internal/shared"
	mongorepo "stayfinder/internal/storage/mongo"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(reg)

	// document store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	log.Info().Str("db", cfg.MongoDB).Msg("document store connection ok")

	// deps
	repo := mongorepo.New(client.Database(cfg.MongoDB))
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	assist := assistant.NewService(repo)

	// city vocabulary snapshot; matching degrades to aliases-only if the
	// listing fails at boot
	if err := assist.Cities().Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("city vocabulary snapshot failed, fuzzy matching starts empty")
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Assist: assist, ChatRPS: cfg.ChatRPS})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
