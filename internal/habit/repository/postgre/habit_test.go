package postgre

import (
	"context"
	"database/sql"
	"testing"
	"time"

	pg "productivity-planner/config/postgre"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := pg.Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	return New(db, log.NewNop())
}

var now = time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)

func mustCreateHabit(t *testing.T, r repo.Repository, opt repo.CreateHabitOptions) model.Habit {
	t.Helper()
	if opt.UserID == "" {
		opt.UserID = "u1"
	}
	if opt.Frequency == "" {
		opt.Frequency = model.FrequencyDaily
	}
	opt.CreatedAt = now
	h, err := r.CreateHabit(context.Background(), opt)
	if err != nil {
		t.Fatalf("CreateHabit(%s) error: %v", opt.ID, err)
	}
	return h
}

func TestCreateAndGetHabit(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created := mustCreateHabit(t, r, repo.CreateHabitOptions{
		ID:         "h1",
		Title:      "Gym",
		Frequency:  model.FrequencyCustom,
		TargetDays: []string{"Mon", "Wed", "Fri"},
		GoalTarget: 12,
		GoalPeriod: model.GoalMonthly,
		Color:      "primary",
	})
	if !created.IsActive || created.Title != "Gym" || len(created.TargetDays) != 3 || created.TargetDays[1] != "Wed" {
		t.Errorf("created = %+v", created)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", created.CreatedAt, now)
	}

	got, err := r.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: "h1", UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneHabit() error: %v", err)
	}
	if got.GoalTarget != 12 || got.GoalPeriod != model.GoalMonthly || got.Frequency != model.FrequencyCustom {
		t.Errorf("got = %+v", got)
	}

	other, err := r.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: "h1", UserID: "u2"})
	if err != nil || other.ID != "" {
		t.Errorf("foreign GetOneHabit() = %+v, %v; want zero", other, err)
	}
}

func TestDeactivateHidesHabit(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	mustCreateHabit(t, r, repo.CreateHabitOptions{ID: "h1", Title: "Read"})
	mustCreateHabit(t, r, repo.CreateHabitOptions{ID: "h2", Title: "Run"})
	mustCreateHabit(t, r, repo.CreateHabitOptions{ID: "h3", Title: "Other", UserID: "u2"})

	if err := r.DeactivateHabit(ctx, repo.DeactivateHabitOptions{ID: "h1", UserID: "u1"}); err != nil {
		t.Fatalf("DeactivateHabit() error: %v", err)
	}

	habits, err := r.ListHabits(ctx, repo.ListHabitsOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListHabits() error: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != "h2" {
		t.Errorf("habits = %+v, want only h2", habits)
	}
	if got, _ := r.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: "h1", UserID: "u1"}); got.ID != "" {
		t.Errorf("deactivated habit still visible: %+v", got)
	}
}

func TestUpsertLog(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	mustCreateHabit(t, r, repo.CreateHabitOptions{ID: "h1", Title: "Meditate"})

	may14 := datemath.Date(2024, time.May, 14)
	first, err := r.UpsertLog(ctx, repo.UpsertLogOptions{ID: "l1", HabitID: "h1", UserID: "u1", LoggedDate: may14, Completed: true, CreatedAt: now})
	if err != nil {
		t.Fatalf("UpsertLog() error: %v", err)
	}
	if !first.LoggedDate.Equal(may14) || !first.Completed {
		t.Errorf("first = %+v", first)
	}

	second, err := r.UpsertLog(ctx, repo.UpsertLogOptions{ID: "l2", HabitID: "h1", UserID: "u1", LoggedDate: may14, Completed: false, CreatedAt: now})
	if err != nil {
		t.Fatalf("UpsertLog() error: %v", err)
	}
	if second.ID != "l1" || second.Completed {
		t.Errorf("second = %+v, want l1 flipped to not completed", second)
	}

	logs, err := r.ListLogs(ctx, repo.ListLogsOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListLogs() error: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("len(logs) = %d, want 1", len(logs))
	}
}

func TestListLogsFilters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	mustCreateHabit(t, r, repo.CreateHabitOptions{ID: "h1", Title: "A"})
	mustCreateHabit(t, r, repo.CreateHabitOptions{ID: "h2", Title: "B"})

	entries := []repo.UpsertLogOptions{
		{ID: "l1", HabitID: "h1", LoggedDate: datemath.Date(2024, time.April, 30), Completed: true},
		{ID: "l2", HabitID: "h1", LoggedDate: datemath.Date(2024, time.May, 2), Completed: true},
		{ID: "l3", HabitID: "h1", LoggedDate: datemath.Date(2024, time.May, 3), Completed: false},
		{ID: "l4", HabitID: "h2", LoggedDate: datemath.Date(2024, time.May, 4), Completed: true},
	}
	for _, e := range entries {
		e.UserID, e.CreatedAt = "u1", now
		if _, err := r.UpsertLog(ctx, e); err != nil {
			t.Fatalf("UpsertLog(%s) error: %v", e.ID, err)
		}
	}

	tests := []struct {
		name string
		opt  repo.ListLogsOptions
		want []string
	}{
		{name: "all", opt: repo.ListLogsOptions{UserID: "u1"}, want: []string{"l4", "l3", "l2", "l1"}},
		{name: "one habit completed", opt: repo.ListLogsOptions{UserID: "u1", HabitIDs: []string{"h1"}, CompletedOnly: true}, want: []string{"l2", "l1"}},
		{name: "since month start", opt: repo.ListLogsOptions{UserID: "u1", Since: datemath.Date(2024, time.May, 1)}, want: []string{"l4", "l3", "l2"}},
		{name: "other user", opt: repo.ListLogsOptions{UserID: "u2"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, err := r.ListLogs(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListLogs() error: %v", err)
			}
			if len(logs) != len(tt.want) {
				t.Fatalf("len(logs) = %d, want %d", len(logs), len(tt.want))
			}
			for i, id := range tt.want {
				if logs[i].ID != id {
					t.Errorf("logs[%d] = %s, want %s", i, logs[i].ID, id)
				}
			}
		})
	}
}
