package dto

// ToolCallRequest names one tool invocation inside a chat request.
type ToolCallRequest struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// ChatRequest is the body of POST /mcp/chat.
type ChatRequest struct {
	Message          string            `json:"message"`
	ContextResources []string          `json:"context_resources"`
	ToolCalls        []ToolCallRequest `json:"tool_calls"`
	PromptName       string            `json:"prompt_name,omitempty"`
	PromptInputs     map[string]any    `json:"prompt_inputs"`
}

// ChatResponse is the body of a successful chat call. Details carries the
// assembled context for observability: resources, tools, prompt, llm_meta.
type ChatResponse struct {
	Message  string         `json:"message"`
	Provider string         `json:"provider"`
	Mock     bool           `json:"mock"`
	Details  map[string]any `json:"details"`
}
