package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	ChatRPS     int
	SeedWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MongoURI:    env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     env("MONGO_DB", "hotel_db"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		ChatRPS:     atoi("CHAT_RPS", 5),
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
