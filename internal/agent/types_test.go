package agent_test

import (
	"context"
	"errors"
	"testing"

	"productivity-planner/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
	gotParams   map[string]interface{}
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	m.gotParams = args
	return m.name + " done", nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "zeta", description: "desc1", params: map[string]interface{}{"type": "object"}}
	tool2 := &mockTool{name: "alpha", description: "desc2"}

	registry.Register(tool1)
	registry.Register(tool2)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("zeta")
		if !ok || got.Name() != "zeta" {
			t.Errorf("expected zeta to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List is sorted", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 || tools[0].Name() != "alpha" || tools[1].Name() != "zeta" {
			t.Errorf("unexpected order: %v, %v", tools[0].Name(), tools[1].Name())
		}
	})

	t.Run("Declarations", func(t *testing.T) {
		decls := registry.Declarations()
		if len(decls) != 2 {
			t.Fatalf("expected 2 declarations, got %d", len(decls))
		}
		if decls[1].Name != "zeta" || decls[1].Description != "desc1" || decls[1].Parameters["type"] != "object" {
			t.Errorf("unexpected declaration: %+v", decls[1])
		}
	})

	t.Run("Execute", func(t *testing.T) {
		out, err := registry.Execute(context.Background(), "alpha", nil)
		if err != nil || out != "alpha done" {
			t.Fatalf("Execute() = %v, %v", out, err)
		}
		if tool2.gotParams == nil {
			t.Error("expected empty params map, got nil")
		}
		if _, err := registry.Execute(context.Background(), "missing", nil); !errors.Is(err, agent.ErrToolNotFound) {
			t.Errorf("Execute(missing) error = %v, want ErrToolNotFound", err)
		}
	})
}

func TestToolRegistry_SchemaValidation(t *testing.T) {
	registry := agent.NewToolRegistry()
	tool := &mockTool{name: "schedule", params: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_ids":        map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			"work_start_hour": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"task_ids"},
	}}
	registry.Register(tool)

	tests := []struct {
		name    string
		params  map[string]interface{}
		wantErr bool
	}{
		{name: "valid", params: map[string]interface{}{"task_ids": []interface{}{"t1"}, "work_start_hour": float64(8)}},
		{name: "missing required", params: map[string]interface{}{}, wantErr: true},
		{name: "wrong type", params: map[string]interface{}{"task_ids": "t1"}, wantErr: true},
		{name: "fractional hour", params: map[string]interface{}{"task_ids": []interface{}{}, "work_start_hour": 8.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool.gotParams = nil
			_, err := registry.Execute(context.Background(), "schedule", tt.params)
			if tt.wantErr {
				if !errors.Is(err, agent.ErrInvalidArguments) {
					t.Errorf("expected ErrInvalidArguments, got %v", err)
				}
				if tool.gotParams != nil {
					t.Error("tool should not run on invalid arguments")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
