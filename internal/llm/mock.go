package llm

import (
	"context"

	"github.com/prxkc/instrat-mcp/internal/config"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// mockReason is the fixed metadata note attached to every mock completion.
const mockReason = "MOCK_MODE enabled or API key missing"

// MockClient is the offline fallback. Generate performs no I/O, holds no
// state, and is deterministic for identical input.
type MockClient struct{}

// NewMockClient creates the offline mock client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Provider returns "mock".
func (c *MockClient) Provider() string { return config.ProviderMock }

// Mock returns true.
func (c *MockClient) Mock() bool { return true }

// Generate echoes the most recent user message back as a synthetic
// completion.
func (c *MockClient) Generate(ctx context.Context, messages []entity.ChatMessage) (string, map[string]any, error) {
	var lastUser string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == entity.RoleUser {
			lastUser = messages[i].Content
			break
		}
	}

	synthetic := "Mock response generated without contacting an external LLM. " +
		"Echoing your request: " + lastUser

	return synthetic, map[string]any{"mock_reason": mockReason}, nil
}
