package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"productivity-planner/internal/agent"
	"productivity-planner/internal/middleware"
	"productivity-planner/internal/model"
	"productivity-planner/internal/planner"
	"productivity-planner/pkg/log"
	"productivity-planner/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTool struct {
	name     string
	result   interface{}
	err      error
	gotScope model.Scope
	gotArgs  map[string]interface{}
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return s.name + " tool" }
func (s *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (s *stubTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	s.gotScope, _ = model.GetScopeFromContext(ctx)
	s.gotArgs = params
	return s.result, s.err
}

func newTestRouter(tools ...agent.Tool) *gin.Engine {
	reg := agent.NewToolRegistry()
	for _, t := range tools {
		reg.Register(t)
	}
	h := New(log.NewNop(), reg)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ScopeKey, model.Scope{UserID: "u1"})
		c.Next()
	})
	r.GET("/agent/tools", h.ListTools)
	r.POST("/agent/tools/:name", h.ExecuteTool)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListTools(t *testing.T) {
	r := newTestRouter(&stubTool{name: "schedule_tasks"}, &stubTool{name: "analyze_priorities"})

	w := do(r, http.MethodGet, "/agent/tools", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data listToolsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Count != 2 || resp.Data.Tools[0].Name != "analyze_priorities" {
		t.Errorf("unexpected tools: %+v", resp.Data)
	}
}

func TestExecuteTool(t *testing.T) {
	tests := []struct {
		name     string
		tool     *stubTool
		path     string
		body     string
		wantCode int
	}{
		{
			name:     "success passes scope and args",
			tool:     &stubTool{name: "analyze_priorities", result: map[string]int{"count": 1}},
			path:     "/agent/tools/analyze_priorities",
			body:     `{"task_ids":["t1"]}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "empty body",
			tool:     &stubTool{name: "analyze_priorities", result: "ok"},
			path:     "/agent/tools/analyze_priorities",
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown tool",
			tool:     &stubTool{name: "analyze_priorities"},
			path:     "/agent/tools/send_email",
			body:     `{}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad json",
			tool:     &stubTool{name: "analyze_priorities"},
			path:     "/agent/tools/analyze_priorities",
			body:     `[1,2]`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid arguments",
			tool:     &stubTool{name: "analyze_priorities", err: fmt.Errorf("%w: task_ids", agent.ErrInvalidArguments)},
			path:     "/agent/tools/analyze_priorities",
			body:     `{"task_ids":"t1"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "planner validation",
			tool:     &stubTool{name: "schedule_tasks", err: planner.ErrInvalidWindow},
			path:     "/agent/tools/schedule_tasks",
			body:     `{"task_ids":["t1"],"work_start_hour":18,"work_end_hour":9}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "internal error",
			tool:     &stubTool{name: "schedule_tasks", err: errors.New("db down")},
			path:     "/agent/tools/schedule_tasks",
			body:     `{"task_ids":["t1"]}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.tool)
			w := do(r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantCode == http.StatusOK && tt.tool.gotScope.UserID != "u1" {
				t.Errorf("scope not propagated: %+v", tt.tool.gotScope)
			}
		})
	}
}

func TestExecuteToolResponseShape(t *testing.T) {
	tool := &stubTool{name: "estimate_durations", result: map[string]string{"reason": "matched"}}
	r := newTestRouter(tool)

	w := do(r, http.MethodPost, "/agent/tools/estimate_durations", `{"task_ids":["a","b"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["tool"] != "estimate_durations" {
		t.Errorf("unexpected data: %#v", resp.Data)
	}
	ids, ok := tool.gotArgs["task_ids"].([]interface{})
	if !ok || len(ids) != 2 {
		t.Errorf("unexpected args: %#v", tool.gotArgs)
	}
}
