// Package config provides application configuration management.
// It loads settings from environment variables (with .env support) and
// provides defaults for logging, fetching, pacing, and output location.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Logging
	LogLevel string

	// Output
	OutputPath string // Destination xlsx workbook path

	// Fetcher
	FetchTimeout time.Duration // Upper bound for a single page fetch
	FetchDelay   time.Duration // Pacing pause between successive fetches
	FetchWorkers int           // Parallel resolutions (1 = sequential with pacing)
	SkipFetch    bool          // Resolve offline, fallback table only

	// Run
	RunTimeout time.Duration // Bound for the whole pipeline run
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, "info"),
		OutputPath:   getEnv(EnvOutputPath, "university_course_data.xlsx"),
		FetchTimeout: getDurationEnv(EnvFetchTimeout, FetchTimeout),
		FetchDelay:   getDurationEnv(EnvFetchDelay, FetchDelay),
		FetchWorkers: getIntEnv(EnvFetchWorkers, 1),
		SkipFetch:    getBoolEnv(EnvSkipFetch, false),
		RunTimeout:   getDurationEnv(EnvRunTimeout, RunTimeout),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %v", EnvFetchTimeout, c.FetchTimeout)
	}
	if c.FetchDelay < 0 {
		return fmt.Errorf("%s must not be negative, got %v", EnvFetchDelay, c.FetchDelay)
	}
	if c.FetchWorkers < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvFetchWorkers, c.FetchWorkers)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%s must not be empty", EnvOutputPath)
	}
	return nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv returns the environment variable as a duration or a default
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getIntEnv returns the environment variable as an int or a default
func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getBoolEnv returns the environment variable as a bool or a default
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
