// Package storage opens the embedded SQLite database shared by the user and
// exercise stores.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         TEXT NOT NULL UNIQUE,
    username   TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS exercises (
    seq         INTEGER PRIMARY KEY AUTOINCREMENT,
    id          TEXT NOT NULL UNIQUE,
    user_id     TEXT NOT NULL REFERENCES users (id),
    description TEXT NOT NULL,
    duration    INTEGER NOT NULL,
    date        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS exercises_user_id_seq_idx ON exercises (user_id, seq);
`

// OpenSQLite opens (creating if needed) the database at path and ensures the
// tracker tables exist. ":memory:" keeps a private in-process database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	inMemory := path == ":memory:"
	dsn := path
	if !inMemory {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if !inMemory {
		dsn += "&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if inMemory {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure sqlite schema: %w", err)
	}
	return sqlDB, nil
}

// IsForeignKeyViolation reports whether err came from a failed REFERENCES check.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
