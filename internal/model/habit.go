package model

import "time"

type HabitFrequency string

const (
	FrequencyDaily    HabitFrequency = "daily"
	FrequencyWeekdays HabitFrequency = "weekdays"
	FrequencyCustom   HabitFrequency = "custom"
)

func (f HabitFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekdays, FrequencyCustom:
		return true
	}
	return false
}

type GoalPeriod string

const (
	GoalWeekly  GoalPeriod = "weekly"
	GoalMonthly GoalPeriod = "monthly"
	GoalYearly  GoalPeriod = "yearly"
)

func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalWeekly, GoalMonthly, GoalYearly:
		return true
	}
	return false
}

// Habit is a recurring activity tracked by daily logs.
type Habit struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Frequency   HabitFrequency
	TargetDays  []string // weekday names, only for FrequencyCustom
	GoalTarget  int      // 0 means no goal
	GoalPeriod  GoalPeriod
	Color       string
	IsActive    bool
	CreatedAt   time.Time
	Logs        []HabitLog
}

// HabitLog records whether a habit was done on a given day.
type HabitLog struct {
	ID         string
	HabitID    string
	UserID     string
	LoggedDate time.Time // midnight UTC
	Completed  bool
	CreatedAt  time.Time
}
