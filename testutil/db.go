// Package testutil provides shared helpers for storage tests.
// Postgres helpers skip automatically when TEST_DATABASE_URL is not set, so
// unit tests can run without a running database. SQLite helpers always run
// against a private in-memory database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/trip-planner/internal/repo"
)

// NewPool opens a *pgxpool.Pool connected to the database specified by the
// TEST_DATABASE_URL environment variable.
//
// The test is skipped automatically if TEST_DATABASE_URL is not set.
// The pool is closed automatically when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := openPool(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// MustOpenPool opens a pool for dsn and panics on any error.
// Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned pool.
func MustOpenPool(dsn string) *pgxpool.Pool {
	pool, err := openPool(dsn)
	if err != nil {
		panic("testutil.MustOpenPool: " + err.Error())
	}
	return pool
}

// NewSQLite opens a migrated in-memory SQLite database that is closed when
// the test finishes.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := repo.OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("testutil.NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func openPool(dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// requireDSN returns the TEST_DATABASE_URL environment variable value,
// skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
