package llm

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prxkc/instrat-mcp/internal/config"
)

func TestBuildClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		cfg          config.LLMConfig
		wantProvider string
		wantMock     bool
	}{
		{
			name:         "mock mode wins over valid credentials",
			cfg:          config.LLMConfig{MockMode: true, Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test"},
			wantProvider: config.ProviderMock,
			wantMock:     true,
		},
		{
			name:         "openai with key",
			cfg:          config.LLMConfig{Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-3.5-turbo"},
			wantProvider: config.ProviderOpenAI,
			wantMock:     false,
		},
		{
			name:         "openai without key falls back to mock",
			cfg:          config.LLMConfig{Provider: config.ProviderOpenAI},
			wantProvider: config.ProviderMock,
			wantMock:     true,
		},
		{
			name:         "gemini with key",
			cfg:          config.LLMConfig{Provider: config.ProviderGemini, GeminiAPIKey: "g-test", GeminiModel: "gemini-1.5-flash"},
			wantProvider: config.ProviderGemini,
			wantMock:     false,
		},
		{
			name:         "gemini without key falls back to mock",
			cfg:          config.LLMConfig{Provider: config.ProviderGemini, OpenAIAPIKey: "sk-test"},
			wantProvider: config.ProviderMock,
			wantMock:     true,
		},
		{
			name:         "unknown provider falls back to mock",
			cfg:          config.LLMConfig{Provider: "anthropic", OpenAIAPIKey: "sk-test"},
			wantProvider: config.ProviderMock,
			wantMock:     true,
		},
		{
			name:         "provider name is case-insensitive",
			cfg:          config.LLMConfig{Provider: "Gemini", GeminiAPIKey: "g-test"},
			wantProvider: config.ProviderGemini,
			wantMock:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := BuildClient(tt.cfg, logger)
			assert.Equal(t, tt.wantProvider, client.Provider())
			assert.Equal(t, tt.wantMock, client.Mock())
		})
	}
}
