package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	StoreBase   string
	StoreKey    string
	StoreRPS    int
	AuthBase    string
	JWTSecret   string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SeedWorkers int
	CacheTTL    time.Duration
}

func Load() Config {
	// optional .env for local runs; real deployments set the environment
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		StoreBase:   env("STORE_BASE_URL", "https://cairo-tours.supabase.co"),
		StoreKey:    env("STORE_API_KEY", ""),
		StoreRPS:    atoi("STORE_RPS", 10),
		AuthBase:    env("AUTH_BASE_URL", ""),
		JWTSecret:   env("JWT_SECRET", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		SeedWorkers: atoi("SEED_WORKERS", 4),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.AuthBase == "" {
		c.AuthBase = c.StoreBase
	}
	if c.StoreKey == "" {
		log.Warn().Msg("STORE_API_KEY is empty")
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; admin sessions cannot be verified")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
