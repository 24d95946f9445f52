package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

func newGeminiClientFor(t *testing.T, srv *httptest.Server) *GeminiClient {
	t.Helper()
	c, err := NewGeminiClient("g-test", "gemini-1.5-flash", func(o *GeminiOptions) {
		o.BaseURL = srv.URL
	})
	require.NoError(t, err)
	return c
}

func TestBuildGeminiRequest(t *testing.T) {
	messages := []entity.ChatMessage{
		{Role: entity.RoleSystem, Content: "Base instruction."},
		{Role: entity.RoleUser, Content: "first"},
		{Role: entity.RoleAssistant, Content: "reply"},
		{Role: entity.RoleSystem, Content: "Extra instruction."},
		{Role: "tool", Content: "odd role"},
	}

	payload := buildGeminiRequest(messages)

	require.NotNil(t, payload.SystemInstruction)
	assert.Equal(t, "Base instruction.\n\nExtra instruction.",
		payload.SystemInstruction.Parts[0].Text)

	require.Len(t, payload.Contents, 3)
	assert.Equal(t, "user", payload.Contents[0].Role)
	assert.Equal(t, "first", payload.Contents[0].Parts[0].Text)
	assert.Equal(t, "model", payload.Contents[1].Role)
	assert.Equal(t, "user", payload.Contents[2].Role, "unrecognized roles default to user")
}

func TestBuildGeminiRequestNoSystemTurns(t *testing.T) {
	payload := buildGeminiRequest([]entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hi"},
	})
	assert.Nil(t, payload.SystemInstruction)
	require.Len(t, payload.Contents, 1)
}

func TestGeminiGenerate(t *testing.T) {
	var captured struct {
		path   string
		apiKey string
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("X-Goog-Api-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"parts": [{"text": "Hello "}, {"text": "there."}]}}],
			"usageMetadata": {"totalTokenCount": 9}
		}`))
	}))
	defer srv.Close()

	c := newGeminiClientFor(t, srv)
	completion, meta, err := c.Generate(context.Background(), []entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello there.", completion, "candidate part texts are concatenated")
	assert.Equal(t, "gemini-1.5-flash", meta["model"])
	assert.True(t, strings.HasSuffix(captured.path, "/v1beta/models/gemini-1.5-flash:generateContent"))
	assert.Equal(t, "g-test", captured.apiKey)

	usage, ok := meta["usage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(9), usage["totalTokenCount"])
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := newGeminiClientFor(t, srv)
	_, _, err := c.Generate(context.Background(), []entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hi"},
	})
	assert.True(t, errors.Is(err, ErrNoCandidates), "got: %v", err)
}

func TestGeminiGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"status": "PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	c := newGeminiClientFor(t, srv)
	_, _, err := c.Generate(context.Background(), []entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hi"},
	})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "gemini", upstream.Provider)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "PERMISSION_DENIED")
}
