package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devSecret = "dev-secret-change-in-production"

// Config holds all process configuration, loaded once at startup and passed
// explicitly to the components that need it.
type Config struct {
	Port            string
	Env             string
	DatabaseDSN     string
	MigrationsPath  string
	JWTSecret       string
	JWTExpiry       time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// Load reads configuration from environment variables, applying defaults for
// anything unset. It refuses to start in production with the default secret.
func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/taskman?parseTime=true"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		JWTSecret:       getEnv("JWT_SECRET", devSecret),
		JWTExpiry:       getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
