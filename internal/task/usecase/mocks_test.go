package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"productivity-planner/internal/model"
	repo "productivity-planner/internal/task/repository"
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

// Mock repository keeping tasks in memory
type mockRepo struct {
	tasks   map[string]model.Task
	err     error
	lastOpt repo.ListTasksOptions
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	m := &mockRepo{tasks: map[string]model.Task{}}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t := model.Task{
		ID: opt.ID, UserID: opt.UserID, Title: opt.Title, Description: opt.Description,
		Priority: opt.Priority, EstimatedMinutes: opt.EstimatedMinutes, DueDate: opt.DueDate,
		StartTime: opt.StartTime, EndTime: opt.EndTime, CreatedAt: opt.CreatedAt, UpdatedAt: opt.CreatedAt,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	m.lastOpt = opt
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (m *mockRepo) ListTasksByIDs(ctx context.Context, opt repo.ListTasksByIDsOptions) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Task
	for _, id := range opt.IDs {
		if t, ok := m.tasks[id]; ok && t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	// storage order differs from request order on purpose
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *mockRepo) ListScheduledTasks(ctx context.Context, opt repo.ListScheduledTasksOptions) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID && t.IsScheduled() &&
			!t.DueDate.Before(opt.StartDate) && !t.DueDate.After(opt.EndDate) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	existing, ok := m.tasks[opt.ID]
	if !ok || existing.UserID != opt.UserID {
		return model.Task{}, nil
	}
	t := model.Task{
		ID: opt.ID, UserID: opt.UserID, Title: opt.Title, Description: opt.Description,
		Priority: opt.Priority, EstimatedMinutes: opt.EstimatedMinutes, DueDate: opt.DueDate,
		StartTime: opt.StartTime, EndTime: opt.EndTime, Completed: opt.Completed,
		CompletedAt: opt.CompletedAt, CreatedAt: existing.CreatedAt, UpdatedAt: opt.UpdatedAt,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	if m.err != nil {
		return m.err
	}
	delete(m.tasks, opt.ID)
	return nil
}

var fixedNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC) // a Wednesday

func newTestUseCase(r *mockRepo) *implUseCase {
	parser, _ := datemath.NewParser("UTC")
	uc := New(r, &mockLogger{}, parser)
	uc.now = func() time.Time { return fixedNow }
	ids := 0
	uc.newID = func() string {
		ids++
		return "id-" + string(rune('0'+ids))
	}
	return uc
}
