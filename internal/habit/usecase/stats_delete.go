package usecase

import (
	"context"

	"productivity-planner/internal/habit"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
)

// Stats reports the current streak, goal progress and total completions.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, id string) (habit.StatsOutput, error) {
	h, err := uc.getActive(ctx, sc, id)
	if err != nil {
		return habit.StatsOutput{}, err
	}

	logs, err := uc.repo.ListLogs(ctx, repo.ListLogsOptions{
		UserID:        sc.UserID,
		HabitIDs:      []string{h.ID},
		CompletedOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Stats ListLogs: %v", err)
		return habit.StatsOutput{}, err
	}

	today := uc.dateMath.Today(uc.now())
	return habit.StatsOutput{
		HabitID:          h.ID,
		Title:            h.Title,
		Streak:           streak(logs, today),
		GoalProgress:     goalProgress(h, logs, today),
		TotalCompletions: len(logs),
	}, nil
}

// Delete deactivates the habit. Logs are kept.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	h, err := uc.getActive(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeactivateHabit(ctx, repo.DeactivateHabitOptions{ID: h.ID, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Delete DeactivateHabit: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getActive(ctx context.Context, sc model.Scope, id string) (model.Habit, error) {
	if id == "" {
		return model.Habit{}, habit.ErrHabitNotFound
	}
	h, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.getActive GetOneHabit: %v", err)
		return model.Habit{}, err
	}
	if h.ID == "" {
		return model.Habit{}, habit.ErrHabitNotFound
	}
	return h, nil
}
