package usecase

import (
	"context"
	"strings"

	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
	repo "productivity-planner/internal/task/repository"
)

// Create validates and stores a new Task for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}
	if input.EstimatedMinutes < 0 || input.EstimatedMinutes > task.MaxEstimatedMinutes {
		return task.CreateOutput{}, task.ErrInvalidDuration
	}

	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return task.CreateOutput{}, err
	}
	dueDate, err := uc.parseDueDate(input.DueDate)
	if err != nil {
		return task.CreateOutput{}, err
	}
	startTime, err := normalizeClock(input.StartTime)
	if err != nil {
		return task.CreateOutput{}, err
	}
	endTime, err := normalizeEndClock(input.EndTime)
	if err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:               uc.newID(),
		UserID:           sc.UserID,
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		Priority:         priority,
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          dueDate,
		StartTime:        startTime,
		EndTime:          endTime,
		CreatedAt:        uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t}, nil
}
