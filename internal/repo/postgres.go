package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgStateStore is the Postgres implementation of StateStore.
// Blobs are stored in a JSONB column of the trip_state table.
type pgStateStore struct {
	db db
}

// NewPGStateStore constructs a StateStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPGStateStore(db db) StateStore {
	return &pgStateStore{db: db}
}

// Load reads the blob stored under key.
func (s *pgStateStore) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM trip_state WHERE key = @key`

	var blob []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repo.pgStateStore.Load: %w", err)
	}
	return blob, nil
}

// Save upserts the blob under key.
func (s *pgStateStore) Save(ctx context.Context, key string, blob []byte) error {
	const q = `
		INSERT INTO trip_state (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	args := pgx.NamedArgs{
		"key":   key,
		"value": blob, // raw JSON; pgx's JSONB codec passes []byte through untouched
	}
	if _, err := s.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.pgStateStore.Save: %w", err)
	}
	return nil
}
