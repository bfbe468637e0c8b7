// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port      string
	DBPath    string
	LogLevel  string
	LogFormat string

	// Rate limit for workout completion, requests per minute per IP.
	CompleteRateLimit int
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over .env entries.
func Load() (Config, error) {
	// godotenv.Load does not override variables already set.
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("WALKSTREAK_PORT", "8080"),
		DBPath:            getEnv("WALKSTREAK_DB_PATH", "walkstreak.db"),
		LogLevel:          getEnv("WALKSTREAK_LOG_LEVEL", "info"),
		LogFormat:         getEnv("WALKSTREAK_LOG_FORMAT", "text"),
		CompleteRateLimit: 60,
	}

	if v := os.Getenv("WALKSTREAK_COMPLETE_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("WALKSTREAK_COMPLETE_RATE_LIMIT must be a positive integer, got %q", v)
		}
		cfg.CompleteRateLimit = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
