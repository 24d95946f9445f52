package llm

import (
	"log/slog"
	"strings"

	"github.com/prxkc/instrat-mcp/internal/config"
	"github.com/prxkc/instrat-mcp/internal/domain"
)

// BuildClient selects and constructs the single process-wide provider client
// from the frozen configuration. It never fails: unsupported providers,
// missing credentials, and construction errors all fall back to the mock
// client so the server always starts with a usable backend.
func BuildClient(cfg config.LLMConfig, logger *slog.Logger) domain.LLMClient {
	if cfg.UseMock() {
		logger.Info("llm client resolved",
			"provider", config.ProviderMock,
			"reason", "mock mode enabled or credential missing",
		)
		return NewMockClient()
	}

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey != "" {
			client, err := NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
			if err != nil {
				logger.Error("failed to create openai client, falling back to mock", "error", err)
				return NewMockClient()
			}
			logger.Info("llm client resolved", "provider", config.ProviderOpenAI, "model", cfg.OpenAIModel)
			return client
		}
	case config.ProviderGemini:
		if cfg.GeminiAPIKey != "" {
			client, err := NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				logger.Error("failed to create gemini client, falling back to mock", "error", err)
				return NewMockClient()
			}
			logger.Info("llm client resolved", "provider", config.ProviderGemini, "model", cfg.GeminiModel)
			return client
		}
	}

	// Unsupported provider name, or the credential vanished between checks.
	logger.Warn("unsupported llm provider, falling back to mock", "provider", cfg.Provider)
	return NewMockClient()
}
