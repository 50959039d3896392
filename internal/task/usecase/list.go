package usecase

import (
	"context"
	"strings"
	"time"

	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
	repo "productivity-planner/internal/task/repository"
)

// List returns a page of the caller's tasks, earliest due date first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	start, end, err := uc.resolveRange(input)
	if err != nil {
		return task.ListOutput{}, err
	}

	var priority model.Priority
	if input.Priority != "" {
		if priority, err = normalizePriority(input.Priority); err != nil {
			return task.ListOutput{}, err
		}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = task.DefaultListLimit
	}
	if limit > task.MaxListLimit {
		limit = task.MaxListLimit
	}
	offset := max(input.Offset, 0)

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:    sc.UserID,
		StartDate: start,
		EndDate:   end,
		Completed: input.Completed,
		Priority:  priority,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// resolveRange turns the date filters into an inclusive range.
// Date wins over StartDate/EndDate.
func (uc *implUseCase) resolveRange(input task.ListInput) (time.Time, time.Time, error) {
	now := uc.now()

	if value := strings.TrimSpace(input.Date); value != "" {
		if r, ok := uc.dateMath.ParseRange(value, now); ok {
			return r.Start, r.End, nil
		}
		d, err := uc.parseDueDate(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return d, d, nil
	}

	start, err := uc.parseDueDate(input.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := uc.parseDueDate(input.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, task.ErrInvalidDateRange
	}
	return start, end, nil
}

// ListByIDs returns the caller's tasks with the given ids, in id order.
// Ids that do not resolve are left out.
func (uc *implUseCase) ListByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	tasks, err := uc.repo.ListTasksByIDs(ctx, repo.ListTasksByIDsOptions{UserID: sc.UserID, IDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListByIDs ListTasksByIDs: %v", err)
		return nil, err
	}
	return orderByIDs(tasks, ids), nil
}

// ListScheduled returns the caller's tasks due in [start, end] that hold a start time.
func (uc *implUseCase) ListScheduled(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Task, error) {
	tasks, err := uc.repo.ListScheduledTasks(ctx, repo.ListScheduledTasksOptions{
		UserID:    sc.UserID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListScheduled ListScheduledTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
