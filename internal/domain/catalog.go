package domain

import "github.com/prxkc/instrat-mcp/internal/domain/entity"

// Catalog is the static resource/tool/prompt store the server exposes and the
// chat orchestrator draws from. Implementations are read-only after
// construction and safe for concurrent use.
type Catalog interface {
	// ListResources returns all resources in a stable order.
	ListResources() []*entity.Resource

	// GetResource returns the resource for id, or false when unknown.
	GetResource(id string) (*entity.Resource, bool)

	// ListTools returns all tool definitions in a stable order.
	ListTools() []*entity.ToolDefinition

	// InvokeTool executes the named tool. Unknown names and malformed
	// arguments yield an ErrInvalidInput-based error naming the problem.
	InvokeTool(name string, arguments map[string]any) (*entity.ToolResult, error)

	// ListPrompts returns all prompt templates in a stable order.
	ListPrompts() []*entity.Prompt

	// RenderPrompt substitutes inputs into the named template. Unknown
	// prompts and missing required inputs yield an ErrInvalidInput-based
	// error; missing input names are listed in the message.
	RenderPrompt(name string, inputs map[string]any) (*entity.RenderedPrompt, error)
}
