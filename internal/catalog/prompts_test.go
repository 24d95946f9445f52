package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxkc/instrat-mcp/internal/domain"
)

func TestListPromptsSorted(t *testing.T) {
	c := New()

	prompts := c.ListPrompts()
	require.Len(t, prompts, 2)
	assert.Equal(t, "summarize-resource", prompts[0].Name)
	assert.Equal(t, "support-reply", prompts[1].Name)
}

func TestRenderPrompt(t *testing.T) {
	c := New()

	rendered, err := c.RenderPrompt("support-reply", map[string]any{
		"customer_message": "My deployment fails.",
		"context":          "Docker or serverless",
	})
	require.NoError(t, err)

	assert.Contains(t, rendered.Content, "Customer message:\nMy deployment fails.")
	assert.Contains(t, rendered.Content, "Context snippets:\nDocker or serverless")
	assert.NotContains(t, rendered.Content, "{customer_message}")
	assert.NotContains(t, rendered.Content, "{context}")
	assert.Equal(t, "support-reply", rendered.Metadata["prompt"])
}

func TestRenderPromptValueContainingPlaceholder(t *testing.T) {
	c := New()

	rendered, err := c.RenderPrompt("summarize-resource", map[string]any{
		"resource_json": "literal {question} inside value",
		"question":      "REPLACED",
	})
	require.NoError(t, err)

	assert.Contains(t, rendered.Content, "literal {question} inside value",
		"substituted values must not be rescanned")
	assert.Contains(t, rendered.Content, "User question:\nREPLACED")
}

func TestRenderPromptNonStringInput(t *testing.T) {
	c := New()

	rendered, err := c.RenderPrompt("summarize-resource", map[string]any{
		"resource_json": map[string]any{"id": "product:faq"},
		"question":      42,
	})
	require.NoError(t, err)
	assert.Contains(t, rendered.Content, "42")
}

func TestRenderPromptMissingInputs(t *testing.T) {
	c := New()

	tests := []struct {
		name        string
		inputs      map[string]any
		errContains string
	}{
		{
			name:        "all inputs missing",
			inputs:      nil,
			errContains: "Missing prompt inputs: customer_message, context",
		},
		{
			name:        "one input missing",
			inputs:      map[string]any{"customer_message": "hello"},
			errContains: "Missing prompt inputs: context",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.RenderPrompt("support-reply", tt.inputs)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidInput(err))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestRenderUnknownPrompt(t *testing.T) {
	c := New()

	_, err := c.RenderPrompt("nonexistent", nil)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "Unknown prompt: nonexistent")
}
