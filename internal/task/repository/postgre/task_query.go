package postgre

import (
	"fmt"
	"strings"

	pg "productivity-planner/config/postgre"
	repo "productivity-planner/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListFilter builds the WHERE clause + args shared by count and page queries.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if !opt.StartDate.IsZero() {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", idx))
		args = append(args, pg.DateArg(opt.StartDate))
		idx++
	}
	if !opt.EndDate.IsZero() {
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", idx))
		args = append(args, pg.DateArg(opt.EndDate))
		idx++
	}
	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, string(opt.Priority))
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
// Tasks without a due date sort last.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildListFilter(opt)
	idx := len(args) + 1

	parts := []string{
		"WHERE " + where,
		"ORDER BY (due_date IS NULL), due_date ASC, start_time ASC, created_at ASC",
	}

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
