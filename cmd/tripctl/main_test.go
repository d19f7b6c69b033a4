package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/config"
)

func TestStoreConfig_PostgresOverrideNeedsDatabaseURL(t *testing.T) {
	cfg := config.Config{StorageDriver: config.DriverSQLite, SQLitePath: "trip-planner.db"}

	_, err := storeConfig(cfg, "postgres", "")

	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestStoreConfig_AppliesOverrides(t *testing.T) {
	cfg := config.Config{StorageDriver: config.DriverPostgres, DatabaseURL: "postgres://localhost/trips"}

	got, err := storeConfig(cfg, "SQLite", "/tmp/trips.db")

	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, got.StorageDriver)
	assert.Equal(t, "/tmp/trips.db", got.SQLitePath)
}

func TestStoreConfig_RejectsUnknownDriver(t *testing.T) {
	_, err := storeConfig(config.Config{StorageDriver: config.DriverSQLite}, "mongodb", "")

	require.ErrorContains(t, err, "STORAGE_DRIVER")
}
