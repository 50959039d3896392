package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Tool represents an agent tool that can be called by an LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters. The caller's scope is
	// read from ctx.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// FunctionDeclaration is the function-calling form of a Tool.
type FunctionDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// Declarations converts tools to function calling format, sorted by name.
func (r *ToolRegistry) Declarations() []FunctionDeclaration {
	tools := r.List()
	decls := make([]FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		decls = append(decls, FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return decls
}

// Execute runs the named tool after checking params against its schema.
func (r *ToolRegistry) Execute(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, ErrToolNotFound
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	if err := validateParams(tool.Parameters(), params); err != nil {
		return nil, err
	}
	return tool.Execute(ctx, params)
}

// validateParams checks params against a JSON schema. Tools without a
// schema accept anything.
func validateParams(schema, params map[string]interface{}) error {
	if schema == nil {
		return nil
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(params))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidArguments, strings.Join(issues, "; "))
}
