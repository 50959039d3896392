package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
	"productivity-planner/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store unavailable")

// Mock repository keeping habits and logs in memory
type mockRepo struct {
	habits  map[string]model.Habit
	logs    map[string]model.HabitLog // key: habit id + date
	err     error
	lastOpt repo.ListLogsOptions
}

func newMockRepo(habits ...model.Habit) *mockRepo {
	m := &mockRepo{habits: map[string]model.Habit{}, logs: map[string]model.HabitLog{}}
	for _, h := range habits {
		m.habits[h.ID] = h
	}
	return m
}

func (m *mockRepo) CreateHabit(ctx context.Context, opt repo.CreateHabitOptions) (model.Habit, error) {
	if m.err != nil {
		return model.Habit{}, m.err
	}
	h := model.Habit{
		ID: opt.ID, UserID: opt.UserID, Title: opt.Title, Description: opt.Description,
		Frequency: opt.Frequency, TargetDays: opt.TargetDays, GoalTarget: opt.GoalTarget,
		GoalPeriod: opt.GoalPeriod, Color: opt.Color, IsActive: true, CreatedAt: opt.CreatedAt,
	}
	m.habits[h.ID] = h
	return h, nil
}

func (m *mockRepo) GetOneHabit(ctx context.Context, opt repo.GetOneHabitOptions) (model.Habit, error) {
	if m.err != nil {
		return model.Habit{}, m.err
	}
	h, ok := m.habits[opt.ID]
	if !ok || h.UserID != opt.UserID || !h.IsActive {
		return model.Habit{}, nil
	}
	return h, nil
}

func (m *mockRepo) ListHabits(ctx context.Context, opt repo.ListHabitsOptions) ([]model.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Habit
	for _, h := range m.habits {
		if h.UserID == opt.UserID && h.IsActive {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockRepo) DeactivateHabit(ctx context.Context, opt repo.DeactivateHabitOptions) error {
	if m.err != nil {
		return m.err
	}
	h := m.habits[opt.ID]
	h.IsActive = false
	m.habits[opt.ID] = h
	return nil
}

func (m *mockRepo) UpsertLog(ctx context.Context, opt repo.UpsertLogOptions) (model.HabitLog, error) {
	if m.err != nil {
		return model.HabitLog{}, m.err
	}
	key := fmt.Sprintf("%s/%s", opt.HabitID, datemath.Format(opt.LoggedDate))
	l, ok := m.logs[key]
	if !ok {
		l = model.HabitLog{ID: opt.ID, HabitID: opt.HabitID, UserID: opt.UserID, LoggedDate: opt.LoggedDate, CreatedAt: opt.CreatedAt}
	}
	l.Completed = opt.Completed
	m.logs[key] = l
	return l, nil
}

func (m *mockRepo) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]model.HabitLog, error) {
	m.lastOpt = opt
	if m.err != nil {
		return nil, m.err
	}
	wanted := map[string]bool{}
	for _, id := range opt.HabitIDs {
		wanted[id] = true
	}
	var out []model.HabitLog
	for _, l := range m.logs {
		if l.UserID != opt.UserID || (len(wanted) > 0 && !wanted[l.HabitID]) {
			continue
		}
		if !opt.Since.IsZero() && l.LoggedDate.Before(opt.Since) {
			continue
		}
		if opt.CompletedOnly && !l.Completed {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedDate.After(out[j].LoggedDate) })
	return out, nil
}

var testScope = model.Scope{UserID: "u1"}

// 2024-05-15 is a Wednesday.
var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(r *mockRepo) *implUseCase {
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	uc := New(r, &mockLogger{}, parser)
	uc.now = func() time.Time { return fixedNow }
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return uc
}

func day(month time.Month, d int) time.Time {
	return datemath.Date(2024, month, d)
}

func completedLogs(habitID string, days ...time.Time) []model.HabitLog {
	logs := make([]model.HabitLog, len(days))
	for i, d := range days {
		logs[i] = model.HabitLog{ID: fmt.Sprintf("l%d", i), HabitID: habitID, UserID: "u1", LoggedDate: d, Completed: true}
	}
	return logs
}

func (m *mockRepo) seed(logs ...model.HabitLog) {
	for _, l := range logs {
		m.logs[fmt.Sprintf("%s/%s", l.HabitID, datemath.Format(l.LoggedDate))] = l
	}
}
