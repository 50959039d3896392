package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
	"productivity-planner/pkg/log"
	"productivity-planner/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockUseCase records the last call and returns canned results.
type mockUseCase struct {
	task      model.Task
	list      task.ListOutput
	err       error
	gotScope  model.Scope
	gotCreate task.CreateInput
	gotList   task.ListInput
	gotUpdate task.UpdateInput
	gotID     string
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	m.gotScope, m.gotCreate = sc, input
	return task.CreateOutput{Task: m.task}, m.err
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.gotScope, m.gotList = sc, input
	return m.list, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	m.gotScope, m.gotID = sc, id
	return task.DetailOutput{Task: m.task}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	m.gotScope, m.gotUpdate = sc, input
	return task.UpdateOutput{Task: m.task}, m.err
}

func (m *mockUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.UpdateOutput, error) {
	m.gotScope, m.gotID = sc, id
	return task.UpdateOutput{Task: m.task}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.gotScope, m.gotID = sc, id
	return m.err
}

func (m *mockUseCase) ListByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	return nil, m.err
}

func (m *mockUseCase) ListScheduled(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Task, error) {
	return nil, m.err
}

var testScope = model.Scope{UserID: "u1", Username: "ana"}

func newTestRouter(uc task.UseCase, withScope bool) *gin.Engine {
	h := New(log.NewNop(), uc)
	r := gin.New()
	if withScope {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ScopeKey, testScope)
			c.Next()
		})
	}
	r.POST("/tasks", h.Create)
	r.GET("/tasks", h.List)
	r.GET("/tasks/:id", h.Detail)
	r.PUT("/tasks/:id", h.Update)
	r.DELETE("/tasks/:id", h.Delete)
	r.POST("/tasks/:id/complete", h.Complete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleTask() model.Task {
	return model.Task{
		ID:               "t1",
		UserID:           "u1",
		Title:            "Write report",
		Priority:         model.PriorityHigh,
		EstimatedMinutes: 120,
		DueDate:          time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "09:00",
		EndTime:          "11:00",
		CreatedAt:        time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC),
	}
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v (%s)", err, w.Body.String())
	}
	data, _ := resp.Data.(map[string]any)
	return data
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{task: sampleTask()}
	r := newTestRouter(uc, true)

	w := do(r, http.MethodPost, "/tasks", `{"title":"Write report","priority":"high","estimated_minutes":120,"due_date":"2024-05-15"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if uc.gotScope != testScope {
		t.Errorf("scope = %+v, want %+v", uc.gotScope, testScope)
	}
	if uc.gotCreate.Title != "Write report" || uc.gotCreate.Priority != model.PriorityHigh || uc.gotCreate.DueDate != "2024-05-15" {
		t.Errorf("input = %+v", uc.gotCreate)
	}

	got, _ := decodeData(t, w)["task"].(map[string]any)
	if got["due_date"] != "2024-05-15" || got["start_time"] != "09:00" || got["estimated_minutes"] != float64(120) {
		t.Errorf("task = %v", got)
	}
	if got["completed_at"] != nil {
		t.Errorf("completed_at = %v, want null", got["completed_at"])
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "missing title", body: `{"description":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"title":`, wantStatus: http.StatusBadRequest},
		{name: "negative minutes", body: `{"title":"a","estimated_minutes":-5}`, wantStatus: http.StatusBadRequest},
		{name: "domain validation", body: `{"title":"a","priority":"urgent"}`, ucErr: task.ErrInvalidPriority, wantStatus: http.StatusBadRequest},
		{name: "store failure", body: `{"title":"a"}`, ucErr: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{err: tt.ucErr}, true)
			w := do(r, http.MethodPost, "/tasks", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, false)
	for _, path := range []string{"/tasks", "/tasks/t1"} {
		if w := do(r, http.MethodGet, path, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, w.Code)
		}
	}
}

func TestList(t *testing.T) {
	uc := &mockUseCase{list: task.ListOutput{Tasks: []model.Task{sampleTask()}, Total: 1, Limit: 50}}
	r := newTestRouter(uc, true)

	w := do(r, http.MethodGet, "/tasks?date=this_week&completed=false&priority=high&limit=10&offset=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	in := uc.gotList
	if in.Date != "this_week" || in.Completed == nil || *in.Completed || in.Priority != model.PriorityHigh || in.Limit != 10 || in.Offset != 5 {
		t.Errorf("input = %+v", in)
	}
	data := decodeData(t, w)
	if data["total"] != float64(1) {
		t.Errorf("total = %v, want 1", data["total"])
	}
	if tasks, _ := data["tasks"].([]any); len(tasks) != 1 {
		t.Errorf("tasks = %v, want 1 entry", data["tasks"])
	}

	if w := do(r, http.MethodGet, "/tasks?priority=urgent", ""); w.Code != http.StatusBadRequest {
		t.Errorf("invalid priority status = %d, want 400", w.Code)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := &mockUseCase{err: task.ErrTaskNotFound}
	r := newTestRouter(uc, true)

	w := do(r, http.MethodGet, "/tasks/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if uc.gotID != "missing" {
		t.Errorf("id = %q, want missing", uc.gotID)
	}
}

func TestUpdate(t *testing.T) {
	uc := &mockUseCase{task: sampleTask()}
	r := newTestRouter(uc, true)

	w := do(r, http.MethodPut, "/tasks/t1", `{"title":"New","priority":"low","start_time":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	in := uc.gotUpdate
	if in.ID != "t1" {
		t.Errorf("id = %q, want t1", in.ID)
	}
	if in.Title == nil || *in.Title != "New" {
		t.Errorf("title = %v, want New", in.Title)
	}
	if in.Priority == nil || *in.Priority != model.PriorityLow {
		t.Errorf("priority = %v, want low", in.Priority)
	}
	if in.StartTime == nil || *in.StartTime != "" {
		t.Errorf("start_time = %v, want explicit empty", in.StartTime)
	}
	if in.Description != nil || in.DueDate != nil || in.Completed != nil {
		t.Errorf("omitted fields must stay nil: %+v", in)
	}
}

func TestCompleteAndDelete(t *testing.T) {
	done := sampleTask()
	done.Completed = true
	done.CompletedAt = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	uc := &mockUseCase{task: done}
	r := newTestRouter(uc, true)

	w := do(r, http.MethodPost, "/tasks/t1/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d, want 200", w.Code)
	}
	got, _ := decodeData(t, w)["task"].(map[string]any)
	if got["completed"] != true || got["completed_at"] == nil {
		t.Errorf("task = %v", got)
	}

	if w := do(r, http.MethodDelete, "/tasks/t1", ""); w.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200", w.Code)
	}
	uc.err = task.ErrTaskNotFound
	if w := do(r, http.MethodDelete, "/tasks/t1", ""); w.Code != http.StatusNotFound {
		t.Errorf("delete missing status = %d, want 404", w.Code)
	}
}

func TestNewTaskRespUnsetFields(t *testing.T) {
	resp := NewTaskResp(model.Task{ID: "t2", Title: "Loose", Priority: model.PriorityMedium})
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	for _, key := range []string{"due_date", "start_time", "end_time", "estimated_minutes", "completed_at"} {
		if got[key] != nil {
			t.Errorf("%s = %v, want null", key, got[key])
		}
	}
}
