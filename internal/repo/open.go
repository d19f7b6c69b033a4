package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/trip-planner/internal/config"
)

// Open connects the state store selected by cfg.StorageDriver, applies its
// migrations, and returns it with a function that releases its connections.
func Open(ctx context.Context, cfg config.Config) (StateStore, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryStateStore(), func() {}, nil

	case config.DriverPostgres:
		// pgxpool.New does not open connections immediately; Ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("repo.Open: create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("repo.Open: connect: %w", err)
		}
		if err := MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("repo.Open: %w", err)
		}
		return NewPGStateStore(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("repo.Open: %w", err)
		}
		return NewSQLiteStateStore(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("repo.Open: unknown storage driver %q", cfg.StorageDriver)
	}
}
