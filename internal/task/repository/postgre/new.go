package postgre

import (
	"database/sql"
	"fmt"

	"productivity-planner/internal/task/repository"
	"productivity-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQL-backed Repository for the task domain.
// The same queries run on PostgreSQL and SQLite.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
