package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-planner/config"
	pg "productivity-planner/config/postgre"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/log"
	"productivity-planner/pkg/scope"
)

func newTestServer(t *testing.T) (*HTTPServer, string) {
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

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	jwtManager := scope.New("test-secret", time.Hour)
	token, err := jwtManager.CreateToken(scope.Payload{UserID: "u1", Username: "ana"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		CORSOrigins: []string{"https://app.example.com"},
		DB:          db,
		JWTManager:  jwtManager,
		DateMath:    parser,
		Planner:     config.PlannerConfig{WorkStartHour: 9, WorkEndHour: 18, WindowDays: 7},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return srv, token
}

func call(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v: %s", err, w.Body.String())
	}
	if err := json.Unmarshal(resp.Data, dst); err != nil {
		t.Fatalf("decode data: %v: %s", err, resp.Data)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without database")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := call(h, http.MethodGet, path, "", ""); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestReady_DatabaseDown(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.db.Close()

	if w := call(srv.Handler(), http.MethodGet, "/ready", "", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tasks", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("unexpected allow origin %q", got)
	}
}

func TestAPIRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, path := range []string{"/api/v1/tasks", "/api/v1/habits", "/api/v1/agent/tools"} {
		if w := call(srv.Handler(), http.MethodGet, path, "", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestPlanningFlow(t *testing.T) {
	srv, token := newTestServer(t)
	h := srv.Handler()

	w := call(h, http.MethodPost, "/api/v1/tasks", token,
		`{"title":"Fix urgent production bug","estimated_minutes":90}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Task struct {
			ID string `json:"id"`
		} `json:"task"`
	}
	decodeData(t, w, &created)
	if created.Task.ID == "" {
		t.Fatal("expected task id")
	}

	w = call(h, http.MethodPost, "/api/v1/planner/priorities", token,
		`{"task_ids":["`+created.Task.ID+`"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("priorities: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var analyzed struct {
		Suggestions []struct {
			SuggestedPriority string `json:"suggested_priority"`
		} `json:"suggestions"`
	}
	decodeData(t, w, &analyzed)
	if len(analyzed.Suggestions) != 1 || analyzed.Suggestions[0].SuggestedPriority != "high" {
		t.Errorf("unexpected suggestions: %+v", analyzed)
	}

	w = call(h, http.MethodPost, "/api/v1/planner/schedule", token,
		`{"task_ids":["`+created.Task.ID+`"],"start_date":"2030-01-07","end_date":"2030-01-08"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var scheduled struct {
		Schedule []struct {
			DueDate   string `json:"due_date"`
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		} `json:"schedule"`
	}
	decodeData(t, w, &scheduled)
	if len(scheduled.Schedule) != 1 {
		t.Fatalf("expected one slot, got %+v", scheduled)
	}
	slot := scheduled.Schedule[0]
	if slot.DueDate != "2030-01-07" || slot.StartTime != "09:00" || slot.EndTime != "11:00" {
		t.Errorf("unexpected slot: %+v", slot)
	}

	w = call(h, http.MethodGet, "/api/v1/agent/tools", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("tools: expected 200, got %d", w.Code)
	}
	var listed struct {
		Count int `json:"count"`
	}
	decodeData(t, w, &listed)
	if listed.Count != 3 {
		t.Errorf("expected 3 tools without calendar, got %d", listed.Count)
	}
}

func TestScheduleThenApplyWholeDay(t *testing.T) {
	srv, token := newTestServer(t)
	h := srv.Handler()

	w := call(h, http.MethodPost, "/api/v1/tasks", token, `{"title":"Offsite","estimated_minutes":1440}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Task struct {
			ID string `json:"id"`
		} `json:"task"`
	}
	decodeData(t, w, &created)

	w = call(h, http.MethodPost, "/api/v1/planner/schedule", token,
		`{"task_ids":["`+created.Task.ID+`"],"start_date":"2030-01-07","end_date":"2030-01-07","work_start_hour":0,"work_end_hour":24}`)
	if w.Code != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var scheduled struct {
		Schedule []struct {
			TaskID    string `json:"task_id"`
			DueDate   string `json:"due_date"`
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		} `json:"schedule"`
	}
	decodeData(t, w, &scheduled)
	if len(scheduled.Schedule) != 1 || scheduled.Schedule[0].EndTime != "24:00" {
		t.Fatalf("unexpected schedule: %+v", scheduled)
	}
	slot := scheduled.Schedule[0]

	w = call(h, http.MethodPost, "/api/v1/planner/apply", token,
		`{"updates":[{"task_id":"`+slot.TaskID+`","due_date":"`+slot.DueDate+`","start_time":"`+slot.StartTime+`","end_time":"`+slot.EndTime+`"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("apply: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var applied struct {
		Updated []struct {
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		} `json:"updated"`
	}
	decodeData(t, w, &applied)
	if len(applied.Updated) != 1 || applied.Updated[0].StartTime != "00:00" || applied.Updated[0].EndTime != "24:00" {
		t.Errorf("unexpected applied tasks: %+v", applied)
	}
}
