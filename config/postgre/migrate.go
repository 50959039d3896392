package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is written in the subset of SQL shared by PostgreSQL and SQLite.
// Dates are DATE columns bound as YYYY-MM-DD strings, times of day are TEXT.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		priority          TEXT NOT NULL DEFAULT 'medium',
		estimated_minutes INTEGER,
		due_date          DATE,
		start_time        TEXT,
		end_time          TEXT,
		completed         BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at      TIMESTAMP,
		created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks (user_id, due_date)`,
	`CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		frequency   TEXT NOT NULL DEFAULT 'daily',
		target_days TEXT NOT NULL DEFAULT '',
		goal_target INTEGER NOT NULL DEFAULT 0,
		goal_period TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		is_active   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits (user_id)`,
	`CREATE TABLE IF NOT EXISTS habit_logs (
		id          TEXT PRIMARY KEY,
		habit_id    TEXT NOT NULL REFERENCES habits (id),
		user_id     TEXT NOT NULL,
		logged_date DATE NOT NULL,
		completed   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (habit_id, logged_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_logs_user_date ON habit_logs (user_id, logged_date)`,
}

// Migrate creates the tables and indexes when missing. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgre.Migrate: statement %d: %w", i+1, err)
		}
	}
	return nil
}
