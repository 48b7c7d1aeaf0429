package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	StripeSecret   string
	SweepInterval  time.Duration
}

// Load reads the environment once at startup. A missing signing secret
// or database DSN is fatal to the process.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    os.Getenv("DB_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		AllowedOrigins: allowedOrigins(),
		StripeSecret:   os.Getenv("STRIPE_SECRET"),
		SweepInterval:  time.Duration(getEnvInt("SWEEP_INTERVAL_MINUTES", 60)) * time.Minute,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN environment variable is not set")
	}

	return cfg, nil
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
