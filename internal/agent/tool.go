package agent

import (
	"context"

	"customer-support-agents/pkg/gemini"
)

// Tool represents a support tool that can be called by the LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns a JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters. The user ID comes from
	// the request context, never from model-provided arguments.
	Execute(ctx context.Context, userID string, params map[string]interface{}) (interface{}, error)
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ToFunctionDeclarations converts tools to the Gemini function calling format.
func (r *ToolRegistry) ToFunctionDeclarations() []gemini.Tool {
	decls := make([]gemini.FunctionDeclaration, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		decls = append(decls, gemini.FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	if len(decls) == 0 {
		return nil
	}
	return []gemini.Tool{{FunctionDeclarations: decls}}
}
