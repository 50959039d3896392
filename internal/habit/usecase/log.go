package usecase

import (
	"context"
	"fmt"
	"strings"

	"productivity-planner/internal/habit"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
)

// Log records the habit as done (or not) on a date, replacing any earlier
// log for that date.
func (uc *implUseCase) Log(ctx context.Context, sc model.Scope, input habit.LogInput) (habit.LogOutput, error) {
	h, err := uc.getActive(ctx, sc, input.HabitID)
	if err != nil {
		return habit.LogOutput{}, err
	}

	now := uc.now()
	date := uc.dateMath.Today(now)
	if v := strings.TrimSpace(input.Date); v != "" {
		if date, err = uc.dateMath.ParseDate(v, now); err != nil {
			return habit.LogOutput{}, fmt.Errorf("%w: %q", habit.ErrInvalidDate, v)
		}
	}

	completed := true
	if input.Completed != nil {
		completed = *input.Completed
	}

	l, err := uc.repo.UpsertLog(ctx, repo.UpsertLogOptions{
		ID:         uc.newID(),
		HabitID:    h.ID,
		UserID:     sc.UserID,
		LoggedDate: date,
		Completed:  completed,
		CreatedAt:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Log UpsertLog: %v", err)
		return habit.LogOutput{}, err
	}

	return habit.LogOutput{Log: l}, nil
}
