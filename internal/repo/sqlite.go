package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql
)

// DBTX is the subset of database/sql used by the SQLite store.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqliteStateStore is the SQLite implementation of StateStore, used as the
// default local durable storage.
type sqliteStateStore struct {
	db DBTX
}

// NewSQLiteStateStore constructs a StateStore over an open SQLite handle.
// The trip_state table must already exist (see OpenSQLite).
func NewSQLiteStateStore(db DBTX) StateStore {
	return &sqliteStateStore{db: db}
}

// OpenSQLite opens the SQLite database at path and applies all migrations.
// Use ":memory:" for a throwaway database. The pool is limited to a single
// connection because every connection to ":memory:" is a separate database
// and SQLite allows only one writer anyway.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: %w", err)
	}
	return db, nil
}

// Load reads the blob stored under key.
func (s *sqliteStateStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM trip_state WHERE key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repo.sqliteStateStore.Load[%s]: %w", key, err)
	}
	return blob, nil
}

// Save upserts the blob under key.
func (s *sqliteStateStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trip_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, blob)
	if err != nil {
		return fmt.Errorf("repo.sqliteStateStore.Save[%s]: %w", key, err)
	}
	return nil
}
