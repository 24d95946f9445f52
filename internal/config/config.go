package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported provider names. Anything else resolves to the mock client.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

// Config is the application configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Frontend FrontendConfig `mapstructure:"frontend"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig configures the logging system.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// LLMConfig selects the language-model backend. Evaluated once at startup;
// the resolved client never re-reads these values.
type LLMConfig struct {
	MockMode     bool   `mapstructure:"mock_mode"`
	Provider     string `mapstructure:"provider"`
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	OpenAIModel  string `mapstructure:"openai_model"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`
}

// FrontendConfig locates the static frontend entry point.
type FrontendConfig struct {
	IndexPath string `mapstructure:"index_path"`
}

// UseMock reports whether the server must run against the offline mock
// client: either mock mode is forced, or the selected provider has no
// credential. Unknown providers count as lacking credentials.
func (c LLMConfig) UseMock() bool {
	return c.MockMode || !c.HasCredential()
}

// HasCredential reports whether the currently selected provider has a
// non-empty API key configured.
func (c LLMConfig) HasCredential() bool {
	switch strings.ToLower(c.Provider) {
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	default:
		return false
	}
}

// Load reads configuration from the given file (optional) and environment
// variables. A missing config file is not an error; defaults plus env cover
// the env-only deployment mode.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.max_request_body_size", 4)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("llm.mock_mode", false)
	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.openai_model", "gpt-3.5-turbo")
	v.SetDefault("llm.gemini_model", "gemini-1.5-flash")

	v.SetDefault("frontend.index_path", "web/index.html")
}

// bindLegacyEnv keeps the conventional un-prefixed variable names working
// alongside the MCP_-prefixed ones.
func bindLegacyEnv(v *viper.Viper) {
	// Errors are only possible with zero keys; ignore.
	_ = v.BindEnv("llm.mock_mode", "MCP_LLM_MOCK_MODE", "MOCK_MODE")
	_ = v.BindEnv("llm.provider", "MCP_LLM_PROVIDER", "LLM_PROVIDER")
	_ = v.BindEnv("llm.openai_api_key", "MCP_LLM_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.openai_model", "MCP_LLM_OPENAI_MODEL", "OPENAI_MODEL")
	_ = v.BindEnv("llm.gemini_api_key", "MCP_LLM_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.gemini_model", "MCP_LLM_GEMINI_MODEL", "GEMINI_MODEL")
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" && c.Server.Mode != "test" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug', 'release' or 'test'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.LLM.Provider == "" {
		return fmt.Errorf("llm.provider is required")
	}

	return nil
}

// GetServerAddr returns the host:port pair for the HTTP listener.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
