package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/prxkc/instrat-mcp/internal/domain"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// ListTools returns all tool definitions sorted by name.
func (c *Catalog) ListTools() []*entity.ToolDefinition {
	out := make([]*entity.ToolDefinition, 0, len(c.tools))
	for _, t := range c.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// InvokeTool executes the named tool with the given arguments. Unknown tool
// names and malformed arguments return an invalid-input error whose message
// names the problem; the message is safe to show to callers.
func (c *Catalog) InvokeTool(name string, arguments map[string]any) (*entity.ToolResult, error) {
	if _, ok := c.tools[name]; !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Unknown tool: %s", name))
	}

	switch name {
	case "math.add":
		a, okA := toFloat(arguments["a"])
		b, okB := toFloat(arguments["b"])
		if !okA || !okB {
			return nil, domain.NewInvalidInputError("Arguments 'a' and 'b' must be numbers.")
		}
		return &entity.ToolResult{Output: a + b, Metadata: map[string]any{}}, nil

	case "time.now":
		now := time.Now().UTC().Format(time.RFC3339Nano)
		return &entity.ToolResult{Output: now, Metadata: map[string]any{}}, nil
	}

	return nil, domain.NewInvalidInputError(fmt.Sprintf("Execution not implemented for tool: %s", name))
}

// toFloat coerces JSON argument values to float64. Numeric strings are
// accepted, matching the lenient coercion of the demo's tool contract.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func seedTools() map[string]*entity.ToolDefinition {
	return map[string]*entity.ToolDefinition{
		"math.add": {
			Name:        "math.add",
			Description: "Adds two numbers and returns the sum.",
			Arguments: []entity.ToolArgument{
				{Name: "a", Type: "float", Description: "First addend.", Required: true},
				{Name: "b", Type: "float", Description: "Second addend.", Required: true},
			},
		},
		"time.now": {
			Name:        "time.now",
			Description: "Returns the current timestamp in ISO 8601 format.",
			Arguments:   []entity.ToolArgument{},
		},
	}
}
