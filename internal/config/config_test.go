package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORAGE_DRIVER", "DATABASE_URL",
		"SQLITE_PATH", "STORAGE_KEY", "SHARE_BASE_URL", "MAX_BODY_BYTES", "LOCALE",
	} {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverSQLite, cfg.StorageDriver)
	require.Equal(t, "trip-planner.db", cfg.SQLitePath)
	require.Empty(t, cfg.StorageKey)
	require.Equal(t, "http://localhost:5173", cfg.ShareBaseURL)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, "vi-VN", cfg.Locale)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/trips")
	t.Setenv("STORAGE_KEY", "team-a")
	t.Setenv("SHARE_BASE_URL", "https://trips.example.com/")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("LOCALE", "en-US")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverPostgres, cfg.StorageDriver)
	require.Equal(t, "postgres://user:pass@db:5432/trips", cfg.DatabaseURL)
	require.Equal(t, "team-a", cfg.StorageKey)
	require.Equal(t, "https://trips.example.com", cfg.ShareBaseURL)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
	require.Equal(t, "en-US", cfg.Locale)
}

// TestLoad_missingRequired verifies that the postgres driver demands
// DATABASE_URL and that the error message names the missing variable.
func TestLoad_missingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_invalidValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver":     {"STORAGE_DRIVER", "mongodb"},
		"non-numeric body":   {"MAX_BODY_BYTES", "lots"},
		"zero body limit":    {"MAX_BODY_BYTES", "0"},
		"negative body size": {"MAX_BODY_BYTES", "-5"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := config.Load()

			require.ErrorContains(t, err, kv[0])
		})
	}
}

// TestLoad_dotEnv verifies that a .env file fills in unset variables.
func TestLoad_dotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SQLITE_PATH")
	t.Cleanup(func() { os.Unsetenv("SQLITE_PATH") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SQLITE_PATH=/var/lib/trips.db\nPORT=7070\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "/var/lib/trips.db", cfg.SQLitePath)
	// PORT is already set (to empty) in the process environment, so the
	// file does not override it.
	require.Equal(t, "8080", cfg.Port)
}

// TestConfig_Validate covers the storage checks that callers re-run after
// overriding the driver.
func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		cfg     config.Config
		wantErr string
	}{
		"sqlite":               {cfg: config.Config{StorageDriver: config.DriverSQLite}},
		"memory":               {cfg: config.Config{StorageDriver: config.DriverMemory}},
		"postgres with url":    {cfg: config.Config{StorageDriver: config.DriverPostgres, DatabaseURL: "postgres://localhost/trips"}},
		"postgres without url": {cfg: config.Config{StorageDriver: config.DriverPostgres}, wantErr: "DATABASE_URL"},
		"unknown driver":       {cfg: config.Config{StorageDriver: "mongodb"}, wantErr: "STORAGE_DRIVER"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.cfg.Validate()

			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
