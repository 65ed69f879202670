package store

import (
	"database/sql"
	"fmt"
)

// Timestamps are stored as unix milliseconds.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS classifications (
		id TEXT PRIMARY KEY,
		sequence INTEGER NOT NULL,
		project_id INTEGER REFERENCES projects(id) ON DELETE SET NULL,
		label TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		code TEXT NOT NULL,
		sample TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS classifications_created_at ON classifications (created_at)`,
	`CREATE INDEX IF NOT EXISTS classifications_project ON classifications (project_id)`,
}

// migrate creates missing tables and indexes.
func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
