// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap.
// Postgres and SQLite carry separate files because their column types differ.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed sqlite/*.sql
var sqliteFS embed.FS

// Postgres holds the Postgres migrations at the root of the FS, as goose expects.
var Postgres = mustSub(postgresFS, "postgres")

// SQLite holds the SQLite migrations at the root of the FS.
var SQLite = mustSub(sqliteFS, "sqlite")

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("migrations: " + err.Error())
	}
	return sub
}
