package entity

// Message roles understood by every provider client. Providers with a
// different role vocabulary (e.g. Gemini's "model") remap internally.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single role-tagged turn handed to a provider client.
// Slice order is conversation order and must be preserved end to end.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
