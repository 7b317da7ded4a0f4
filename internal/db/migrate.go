package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		why        TEXT NOT NULL DEFAULT '',
		kgi        TEXT NOT NULL DEFAULT '',
		deadline   TEXT,
		area       TEXT NOT NULL DEFAULT 'general',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_title ON goals(title)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		goal_id        TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','doing','done')),
		impact         INTEGER NOT NULL DEFAULT 1,
		effort_min     INTEGER NOT NULL DEFAULT 30,
		due            TEXT,
		parent_task_id TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS reflections (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		text       TEXT NOT NULL DEFAULT '',
		mood       INTEGER NOT NULL DEFAULT 3,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reflections_date ON reflections(date)`,

	`CREATE TABLE IF NOT EXISTS suggestions (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		type         TEXT NOT NULL,
		content_json TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_suggestions_type_date ON suggestions(type, date)`,

	`CREATE TABLE IF NOT EXISTS integrations (
		id    TEXT PRIMARY KEY,
		kind  TEXT NOT NULL,
		key   TEXT NOT NULL DEFAULT 'default',
		value TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_integrations_kind_key ON integrations(kind, key)`,
}
