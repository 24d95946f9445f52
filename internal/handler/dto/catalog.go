package dto

// ToolInvocationRequest is the body of POST /mcp/tools/invoke.
type ToolInvocationRequest struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// PromptRenderRequest is the body of POST /mcp/prompts/render.
type PromptRenderRequest struct {
	PromptName string         `json:"prompt_name"`
	Inputs     map[string]any `json:"inputs"`
}
