package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	apperrors "github.com/pitchside/pitchside/internal/errors"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB for the analytics store. Schema is owned by the app and
// applied on open; the database is treated as read-mostly reference data.
type DB struct {
	*sql.DB
}

// Open opens the SQLite database at path and applies the schema.
// Creates the file (and parent directory) if missing.
func Open(ctx context.Context, path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, apperrors.DataAccess("create store directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.DataAccess("open store", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperrors.DataAccess("ping store", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, apperrors.DataAccess("apply schema", err)
	}

	return &DB{db}, nil
}

// Ping reports store reachability for health checks.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return apperrors.DataAccess("ping store", err)
	}
	return nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.DB.Close()
}
