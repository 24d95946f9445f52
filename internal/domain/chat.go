package domain

import (
	"context"

	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// ToolCall names a tool and the arguments to invoke it with.
type ToolCall struct {
	ToolName  string
	Arguments map[string]any
}

// ChatRequest is the internal chat request consumed by the orchestrator.
type ChatRequest struct {
	Message          string
	ContextResources []string
	ToolCalls        []ToolCall
	PromptName       string
	PromptInputs     map[string]any
}

// ChatResponse is the orchestrator's result. Details holds the assembled
// context (resources, tool outputs, prompt, provider metadata) purely for
// observability.
type ChatResponse struct {
	Message  string
	Provider string
	Mock     bool
	Details  map[string]any
}

// LLMClient abstracts a language-model backend. Exactly one implementation is
// constructed at startup and shared by all requests; implementations must be
// safe for concurrent use. Provider and Mock identify the variant without
// invoking the capability.
type LLMClient interface {
	// Generate produces a completion for the ordered message list and
	// returns the completion text plus provider metadata.
	Generate(ctx context.Context, messages []entity.ChatMessage) (string, map[string]any, error)

	// Provider returns the backend's identifying name ("mock", "openai", ...).
	Provider() string

	// Mock reports whether this client produces synthetic offline output.
	Mock() bool
}

// ChatUsecase orchestrates a chat request end to end.
type ChatUsecase interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
