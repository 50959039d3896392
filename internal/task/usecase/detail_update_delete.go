package usecase

import (
	"context"
	"strings"
	"time"

	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
	repo "productivity-planner/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Completing a task stamps CompletedAt,
// reopening it clears the stamp.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	next, err := uc.merge(existing, input)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:               existing.ID,
		UserID:           sc.UserID,
		Title:            next.Title,
		Description:      next.Description,
		Priority:         next.Priority,
		EstimatedMinutes: next.EstimatedMinutes,
		DueDate:          next.DueDate,
		StartTime:        next.StartTime,
		EndTime:          next.EndTime,
		Completed:        next.Completed,
		CompletedAt:      next.CompletedAt,
		UpdatedAt:        uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: t}, nil
}

// Complete marks a Task as done.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.UpdateOutput, error) {
	done := true
	return uc.Update(ctx, sc, task.UpdateInput{ID: id, Completed: &done})
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: existing.ID, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.getOwned GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// merge overlays the non-nil fields of input onto t.
func (uc *implUseCase) merge(t model.Task, input task.UpdateInput) (model.Task, error) {
	var err error

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return t, task.ErrEmptyTitle
		}
		t.Title = title
	}
	if input.Description != nil {
		t.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		if t.Priority, err = normalizePriority(*input.Priority); err != nil {
			return t, err
		}
	}
	if input.EstimatedMinutes != nil {
		if *input.EstimatedMinutes < 0 || *input.EstimatedMinutes > task.MaxEstimatedMinutes {
			return t, task.ErrInvalidDuration
		}
		t.EstimatedMinutes = *input.EstimatedMinutes
	}
	if input.DueDate != nil {
		if t.DueDate, err = uc.parseDueDate(*input.DueDate); err != nil {
			return t, err
		}
	}
	if input.StartTime != nil {
		if t.StartTime, err = normalizeClock(*input.StartTime); err != nil {
			return t, err
		}
	}
	if input.EndTime != nil {
		if t.EndTime, err = normalizeEndClock(*input.EndTime); err != nil {
			return t, err
		}
	}
	if input.Completed != nil && *input.Completed != t.Completed {
		t.Completed = *input.Completed
		if t.Completed {
			t.CompletedAt = uc.now()
		} else {
			t.CompletedAt = time.Time{}
		}
	}
	return t, nil
}
