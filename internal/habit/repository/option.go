package repository

import (
	"time"

	"productivity-planner/internal/model"
)

// CreateHabitOptions holds parameters for inserting a new Habit.
type CreateHabitOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Frequency   model.HabitFrequency
	TargetDays  []string
	GoalTarget  int
	GoalPeriod  model.GoalPeriod
	Color       string
	CreatedAt   time.Time
}

// GetOneHabitOptions selects an active habit of a user.
type GetOneHabitOptions struct {
	ID     string
	UserID string
}

type ListHabitsOptions struct {
	UserID string
}

type DeactivateHabitOptions struct {
	ID     string
	UserID string
}

// UpsertLogOptions writes the log of a habit for one date. An existing log
// for the same habit and date keeps its id and takes the new Completed value.
type UpsertLogOptions struct {
	ID         string
	HabitID    string
	UserID     string
	LoggedDate time.Time
	Completed  bool
	CreatedAt  time.Time
}

// ListLogsOptions filters logs. Empty HabitIDs means every habit of the user,
// zero Since means no lower bound.
type ListLogsOptions struct {
	UserID        string
	HabitIDs      []string
	Since         time.Time
	CompletedOnly bool
}
