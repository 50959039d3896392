package postgre

import (
	"context"
	"database/sql"
	"fmt"

	pg "productivity-planner/config/postgre"
	"productivity-planner/internal/model"
	repo "productivity-planner/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, priority, estimated_minutes, due_date,
	start_time, end_time, completed, completed_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		priority             string
		minutes              sql.NullInt64
		startTime, endTime   sql.NullString
		dueDate, completedAt pg.NullTime
		createdAt, updatedAt pg.NullTime
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &priority, &minutes, &dueDate,
		&startTime, &endTime, &t.Completed, &completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.EstimatedMinutes = int(minutes.Int64)
	t.DueDate = dueDate.Date()
	t.StartTime = startTime.String
	t.EndTime = endTime.String
	t.CompletedAt = completedAt.Time
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, description, priority, estimated_minutes, due_date,
			start_time, end_time, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10, $10)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Description, string(opt.Priority),
		pg.IntArg(opt.EstimatedMinutes), pg.DateArg(opt.DueDate),
		pg.StringArg(opt.StartTime), pg.StringArg(opt.EndTime),
		opt.CreatedAt.UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	where, whereArgs := r.buildListFilter(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// ListTasksByIDs returns the user's tasks whose id is in opt.IDs, in storage order.
func (r *implRepository) ListTasksByIDs(ctx context.Context, opt repo.ListTasksByIDsOptions) ([]model.Task, error) {
	if len(opt.IDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE user_id = $1 AND id IN (%s)",
		taskColumns, pg.Placeholders(2, len(opt.IDs)))
	args := make([]any, 0, len(opt.IDs)+1)
	args = append(args, opt.UserID)
	for _, id := range opt.IDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasksByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasksByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// ListScheduledTasks returns tasks due within the range that hold a start time.
func (r *implRepository) ListScheduledTasks(ctx context.Context, opt repo.ListScheduledTasksOptions) ([]model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE user_id = $1 AND due_date >= $2 AND due_date <= $3 AND start_time IS NOT NULL
		ORDER BY due_date, start_time`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, pg.DateArg(opt.StartDate), pg.DateArg(opt.EndDate))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListScheduledTasks"), err)
		return nil, repo.ErrFailedToList
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListScheduledTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites a Task by ID and returns the updated entity.
// Returns zero-value Task when no row matched.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, estimated_minutes = $4, due_date = $5,
			start_time = $6, end_time = $7, completed = $8, completed_at = $9, updated_at = $10
		WHERE id = $11 AND user_id = $12
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, string(opt.Priority), pg.IntArg(opt.EstimatedMinutes),
		pg.DateArg(opt.DueDate), pg.StringArg(opt.StartTime), pg.StringArg(opt.EndTime),
		opt.Completed, pg.TimeArg(opt.CompletedAt), opt.UpdatedAt.UTC(),
		opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
