package db

import (
	"database/sql"
	"fmt"
)

// migrations are executed in order. Statements must stay idempotent because
// the migration system re-runs all of them on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS partitions (
		owner_id   TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (owner_id, key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_partitions_owner ON partitions(owner_id)`,
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
