package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL   string
	Schema        string
	DBMaxOpen     int
	DBMaxIdle     int
	DBMaxLifetime time.Duration

	// JWT
	JWTSecret string

	// Pagination
	MaxPageSize int
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads configuration from the environment. DATABASE_URL and JWT_SECRET
// have no defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "4000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Schema:        getEnv("MAIN_DB_SCHEMA", "public"),
		DBMaxOpen:     getEnvInt("DB_MAX_OPEN", 25),
		DBMaxIdle:     getEnvInt("DB_MAX_IDLE", 25),
		DBMaxLifetime: time.Duration(getEnvInt("DB_MAX_LIFETIME", 300)) * time.Second,
		JWTSecret:     getEnv("JWT_SECRET", ""),
		MaxPageSize:   getEnvInt("MAX_PAGE_SIZE", 100),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if !identRe.MatchString(cfg.Schema) {
		return nil, fmt.Errorf("MAIN_DB_SCHEMA %q is not a valid identifier", cfg.Schema)
	}
	if cfg.MaxPageSize <= 0 {
		return nil, fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", cfg.MaxPageSize)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
