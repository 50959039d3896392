package repository

import (
	"context"

	"productivity-planner/internal/model"
)

// Repository is the composed interface for the habit domain data store.
type Repository interface {
	HabitRepository
	LogRepository
}

// HabitRepository defines data access for Habit. Lookups that find nothing
// return a zero-value Habit and no error. Only active habits are visible.
type HabitRepository interface {
	CreateHabit(ctx context.Context, opt CreateHabitOptions) (model.Habit, error)
	GetOneHabit(ctx context.Context, opt GetOneHabitOptions) (model.Habit, error)
	ListHabits(ctx context.Context, opt ListHabitsOptions) ([]model.Habit, error)
	DeactivateHabit(ctx context.Context, opt DeactivateHabitOptions) error
}

// LogRepository defines data access for HabitLog.
type LogRepository interface {
	UpsertLog(ctx context.Context, opt UpsertLogOptions) (model.HabitLog, error)
	ListLogs(ctx context.Context, opt ListLogsOptions) ([]model.HabitLog, error)
}
