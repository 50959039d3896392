package habit

import "productivity-planner/internal/model"

// DefaultColor is the palette key given to habits created without one.
const DefaultColor = "primary"

// Weekdays are the accepted target day names, in calendar order.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type CreateInput struct {
	Title       string
	Description string
	Frequency   model.HabitFrequency
	TargetDays  []string
	GoalTarget  int
	GoalPeriod  model.GoalPeriod
	Color       string
}

type CreateOutput struct {
	Habit model.Habit
}

// ListInput controls whether each habit carries its logs since the start of the month.
type ListInput struct {
	IncludeLogs bool
}

type ListOutput struct {
	Habits []model.Habit
}

// LogInput marks a habit on a date. Empty Date means today, nil Completed means true.
type LogInput struct {
	HabitID   string
	Date      string
	Completed *bool
}

type LogOutput struct {
	Log model.HabitLog
}

// GoalProgress counts completions since the start of the goal period.
type GoalProgress struct {
	Current int
	Target  int
	Period  model.GoalPeriod
}

type StatsOutput struct {
	HabitID          string
	Title            string
	Streak           int
	GoalProgress     *GoalProgress
	TotalCompletions int
}
