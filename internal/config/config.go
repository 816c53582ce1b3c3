package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Resource paths
	DataDir         string
	LeaderboardPath string
	HistoryDBPath   string
	LogPath         string

	// RNG seed override; 0 means seed from the clock
	Seed int64

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dataDir := getEnvWithDefault("KASYNO_DATA_DIR", filepath.Join(wd, "data"))

	cfg := &Config{
		DataDir:         dataDir,
		LeaderboardPath: getEnvWithDefault("KASYNO_LEADERBOARD_PATH", filepath.Join(dataDir, "leaderboard.txt")),
		HistoryDBPath:   getEnvWithDefault("KASYNO_HISTORY_DB", filepath.Join(dataDir, "kasyno.db")),
		LogPath:         getEnvWithDefault("KASYNO_LOG_PATH", filepath.Join(dataDir, "kasyno.log")),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if seedStr := os.Getenv("KASYNO_SEED"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid KASYNO_SEED %q: %w", seedStr, err)
		}
		cfg.Seed = seed
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
