package postgre

import (
	"context"
	"fmt"
	"strings"

	pg "productivity-planner/config/postgre"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
)

const logColumns = `id, habit_id, user_id, logged_date, completed, created_at`

func scanLog(row rowScanner) (model.HabitLog, error) {
	var (
		l                     model.HabitLog
		loggedDate, createdAt pg.NullTime
	)
	if err := row.Scan(&l.ID, &l.HabitID, &l.UserID, &loggedDate, &l.Completed, &createdAt); err != nil {
		return model.HabitLog{}, err
	}
	l.LoggedDate = loggedDate.Date()
	l.CreatedAt = createdAt.Time
	return l, nil
}

// UpsertLog inserts the log for (habit, date) or overwrites its completion.
func (r *implRepository) UpsertLog(ctx context.Context, opt repo.UpsertLogOptions) (model.HabitLog, error) {
	query := `
		INSERT INTO habit_logs (id, habit_id, user_id, logged_date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (habit_id, logged_date) DO UPDATE SET completed = excluded.completed
		RETURNING ` + logColumns

	l, err := scanLog(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.HabitID, opt.UserID, pg.DateArg(opt.LoggedDate), opt.Completed, opt.CreatedAt.UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertLog"), err)
		return model.HabitLog{}, repo.ErrFailedToUpsert
	}
	return l, nil
}

// ListLogs returns logs newest date first.
func (r *implRepository) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]model.HabitLog, error) {
	where, args := r.buildLogFilter(opt)
	query := fmt.Sprintf("SELECT %s FROM habit_logs WHERE %s ORDER BY logged_date DESC, habit_id ASC", logColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLogs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var logs []model.HabitLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLogs"), err)
			return nil, repo.ErrFailedToList
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLogs"), err)
		return nil, repo.ErrFailedToList
	}
	return logs, nil
}

func (r *implRepository) buildLogFilter(opt repo.ListLogsOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if len(opt.HabitIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("habit_id IN (%s)", pg.Placeholders(idx, len(opt.HabitIDs))))
		for _, id := range opt.HabitIDs {
			args = append(args, id)
		}
		idx += len(opt.HabitIDs)
	}
	if !opt.Since.IsZero() {
		conditions = append(conditions, fmt.Sprintf("logged_date >= $%d", idx))
		args = append(args, pg.DateArg(opt.Since))
	}
	if opt.CompletedOnly {
		conditions = append(conditions, "completed = TRUE")
	}

	return strings.Join(conditions, " AND "), args
}
