package usecase

import (
	"context"

	"productivity-planner/internal/habit"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
	"productivity-planner/pkg/datemath"
)

// List returns the caller's active habits. With IncludeLogs each habit
// carries its logs since the first day of the current month.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input habit.ListInput) (habit.ListOutput, error) {
	habits, err := uc.repo.ListHabits(ctx, repo.ListHabitsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.List ListHabits: %v", err)
		return habit.ListOutput{}, err
	}
	if !input.IncludeLogs || len(habits) == 0 {
		return habit.ListOutput{Habits: habits}, nil
	}

	logs, err := uc.repo.ListLogs(ctx, repo.ListLogsOptions{
		UserID: sc.UserID,
		Since:  datemath.StartOfMonth(uc.dateMath.Today(uc.now())),
	})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.List ListLogs: %v", err)
		return habit.ListOutput{}, err
	}

	byHabit := make(map[string][]model.HabitLog, len(habits))
	for _, l := range logs {
		byHabit[l.HabitID] = append(byHabit[l.HabitID], l)
	}
	for i := range habits {
		habits[i].Logs = byHabit[habits[i].ID]
	}

	return habit.ListOutput{Habits: habits}, nil
}
