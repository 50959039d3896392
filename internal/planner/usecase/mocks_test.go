package usecase

import (
	"context"
	"errors"
	"time"

	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/gcalendar"
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

// Mock task use case backed by a map
type mockTaskUC struct {
	tasks     map[string]model.Task
	scheduled []model.Task
	err       error
	updateErr error

	gotStart time.Time
	gotEnd   time.Time
	updates  []task.UpdateInput
}

func newMockTaskUC(tasks ...model.Task) *mockTaskUC {
	m := &mockTaskUC{tasks: map[string]model.Task{}}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *mockTaskUC) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, errors.New("not implemented")
}

func (m *mockTaskUC) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, errors.New("not implemented")
}

func (m *mockTaskUC) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, ok := m.tasks[id]
	if !ok {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

func (m *mockTaskUC) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	m.updates = append(m.updates, input)
	if m.updateErr != nil {
		return task.UpdateOutput{}, m.updateErr
	}
	t, ok := m.tasks[input.ID]
	if !ok || t.UserID != sc.UserID {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.EstimatedMinutes != nil {
		t.EstimatedMinutes = *input.EstimatedMinutes
	}
	if input.DueDate != nil {
		d, err := time.Parse(datemath.Layout, *input.DueDate)
		if err != nil {
			return task.UpdateOutput{}, task.ErrInvalidDate
		}
		t.DueDate = d
	}
	if input.StartTime != nil {
		t.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		t.EndTime = *input.EndTime
	}
	m.tasks[t.ID] = t
	return task.UpdateOutput{Task: t}, nil
}

func (m *mockTaskUC) Complete(ctx context.Context, sc model.Scope, id string) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, errors.New("not implemented")
}

func (m *mockTaskUC) Delete(ctx context.Context, sc model.Scope, id string) error {
	return errors.New("not implemented")
}

func (m *mockTaskUC) ListByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Task
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok && t.UserID == sc.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskUC) ListScheduled(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Task, error) {
	m.gotStart, m.gotEnd = start, end
	if m.err != nil {
		return nil, m.err
	}
	return m.scheduled, nil
}

// Mock calendar recording created events
type mockCalendar struct {
	events []gcalendar.CreateEventRequest
	err    error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.example/ev-1", StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

var testScope = model.Scope{UserID: "u1"}

// 2024-05-15 is a Wednesday.
var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(taskUC *mockTaskUC, cal CalendarClient, opts Options) *implUseCase {
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	uc := New(&mockLogger{}, taskUC, parser, cal, opts)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func day(d int) time.Time {
	return datemath.Date(2024, time.May, d)
}
