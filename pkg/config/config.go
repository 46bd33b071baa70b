package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	GRPCPort int
	HTTPPort int
	// GRPCAddr is where the gateway finds the api service.
	GRPCAddr string

	StoreDriver string
	Postgres    postgres.Config

	// RedisAddr enables the catalog cache when set.
	RedisAddr       string
	CatalogCacheTTL time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	CartMaxRetries      int
	MaxCartEntries      int
	CheckoutConcurrency int

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the environment, first merging a .env file from the working
// directory if one exists. Variables already set win over the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:    getEnv("APP_ENV", "dev"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		HTTPPort:  getEnvInt("HTTP_PORT", 8080),
		GRPCPort:  getEnvInt("GRPC_PORT", 8081),
		GRPCAddr:  getEnv("GRPC_ADDR", "localhost:8081"),

		StoreDriver: getEnv("STORE_DRIVER", StorePostgres),
		Postgres: postgres.Config{
			Host:    getEnv("POSTGRES_HOST", "localhost"),
			Port:    getEnvInt("POSTGRES_PORT", 5432),
			User:    getEnv("POSTGRES_USER", "shopping"),
			Pass:    getEnv("POSTGRES_PASSWORD", "shoppingpassword"),
			DB:      getEnv("POSTGRES_DB", "shopping_db"),
			SSLMode: getEnv("POSTGRES_SSLMODE", "disable"),
		},

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		CartMaxRetries:      getEnvInt("CART_MAX_RETRIES", 5),
		MaxCartEntries:      getEnvInt("CART_MAX_ENTRIES", 1000),
		CheckoutConcurrency: getEnvInt("CHECKOUT_CONCURRENCY", 10),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
