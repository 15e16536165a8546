package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. Each statement must be safe to
// re-run on an already-migrated database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blobs (
		identity   TEXT NOT NULL,
		collection TEXT NOT NULL,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (identity, collection)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		scope      TEXT PRIMARY KEY,
		uid        TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
