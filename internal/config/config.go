// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all configuration values for the API server and tripctl.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StorageDriver selects the state store: sqlite, postgres or memory.
	// Defaults to "sqlite".
	StorageDriver string

	// DatabaseURL is the Postgres connection string.
	// Required when StorageDriver is "postgres".
	DatabaseURL string

	// SQLitePath is the database file for the sqlite driver.
	// Defaults to "trip-planner.db".
	SQLitePath string

	// StorageKey is the key the trip collection is saved under.
	// Empty means the store's default key.
	StorageKey string

	// ShareBaseURL prefixes share links: {ShareBaseURL}/share/{token}.
	// Defaults to "http://localhost:5173".
	ShareBaseURL string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// Locale is the BCP 47 tag used for formatted money and dates.
	// Defaults to "vi-VN".
	Locale string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is read first if present; variables
// already set in the environment take precedence over it.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: read .env: %w", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "trip-planner.db"),
		StorageKey:    os.Getenv("STORAGE_KEY"),
		ShareBaseURL:  strings.TrimRight(getEnv("SHARE_BASE_URL", "http://localhost:5173"), "/"),
		Locale:        getEnv("LOCALE", "vi-VN"),
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES"))
	}
	cfg.MaxBodyBytes = maxBody

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the storage settings. Load calls it, and callers that
// override StorageDriver afterwards (tripctl --driver) must call it again.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of sqlite, postgres, memory, got %q", c.StorageDriver)
	}

	var missing []string

	if c.StorageDriver == DriverPostgres && c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
