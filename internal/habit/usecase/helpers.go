package usecase

import (
	"fmt"
	"strings"
	"time"

	"productivity-planner/internal/habit"
	"productivity-planner/internal/model"
	"productivity-planner/pkg/datemath"
)

// normalizeDays maps day names to the canonical "Mon" form, keeping the
// first occurrence order and dropping duplicates.
func normalizeDays(days []string) ([]string, error) {
	seen := make(map[string]bool, len(days))
	out := make([]string, 0, len(days))
	for _, d := range days {
		day, ok := canonicalDay(d)
		if !ok {
			return nil, fmt.Errorf("%w: %q", habit.ErrInvalidTargetDay, d)
		}
		if !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	return out, nil
}

// dayNames maps lowercase short and long day names to the short form.
var dayNames = func() map[string]string {
	m := make(map[string]string, 2*len(habit.Weekdays))
	for i, short := range habit.Weekdays {
		m[strings.ToLower(short)] = short
		m[strings.ToLower(time.Weekday(i).String())] = short
	}
	return m
}()

func canonicalDay(s string) (string, bool) {
	day, ok := dayNames[strings.ToLower(strings.TrimSpace(s))]
	return day, ok
}

// normalizeGoal clears the period when there is no target and requires a
// valid period when there is one.
func normalizeGoal(target int, period model.GoalPeriod) (int, model.GoalPeriod, error) {
	if target < 0 {
		return 0, "", fmt.Errorf("%w: goal_target must not be negative", habit.ErrInvalidGoal)
	}
	if target == 0 {
		return 0, "", nil
	}
	period = model.GoalPeriod(strings.ToLower(strings.TrimSpace(string(period))))
	if !period.IsValid() {
		return 0, "", fmt.Errorf("%w: goal_period must be weekly, monthly or yearly", habit.ErrInvalidGoal)
	}
	return target, period, nil
}

// streak counts consecutive completed days ending today. A day without a
// log breaks the streak, except today itself which may still be logged.
func streak(logs []model.HabitLog, today time.Time) int {
	done := make(map[string]bool, len(logs))
	for _, l := range logs {
		if l.Completed {
			done[datemath.Format(l.LoggedDate)] = true
		}
	}

	count := 0
	day := today
	if !done[datemath.Format(day)] {
		day = day.AddDate(0, 0, -1)
	}
	for done[datemath.Format(day)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// goalProgress returns nil when the habit has no goal.
func goalProgress(h model.Habit, logs []model.HabitLog, today time.Time) *habit.GoalProgress {
	if h.GoalTarget <= 0 || !h.GoalPeriod.IsValid() {
		return nil
	}

	var since time.Time
	switch h.GoalPeriod {
	case model.GoalWeekly:
		since = datemath.StartOfWeek(today)
	case model.GoalYearly:
		since = datemath.StartOfYear(today)
	default:
		since = datemath.StartOfMonth(today)
	}

	current := 0
	for _, l := range logs {
		if l.Completed && !l.LoggedDate.Before(since) {
			current++
		}
	}
	return &habit.GoalProgress{Current: current, Target: h.GoalTarget, Period: h.GoalPeriod}
}
