package entity

// Resource is a named, typed chunk of static reference data retrievable by id.
// The JSON form here is the serialized record returned by the resource
// endpoints and embedded in chat response details, so tags live on the entity.
type Resource struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URI         string         `json:"uri"`
	MimeType    string         `json:"mime_type"`
	Tags        []string       `json:"tags"`
	Data        map[string]any `json:"data"`
}

// ToolArgument describes one declared argument of a tool.
type ToolArgument struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// ToolDefinition is a named function with a declared argument schema.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Arguments   []ToolArgument `json:"arguments"`
}

// ToolResult is the outcome of a single tool execution.
type ToolResult struct {
	Output   any            `json:"output"`
	Metadata map[string]any `json:"metadata"`
}

// Prompt is a parameterized text template with named required input variables.
type Prompt struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Template       string   `json:"template"`
	InputVariables []string `json:"input_variables"`
}

// RenderedPrompt is the result of substituting inputs into a prompt template.
type RenderedPrompt struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}
