package llm

import (
	"os"
	"strconv"
)

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	TimeoutMs   int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// No API key is configured by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		BaseURL:     "https://api.chatanywhere.org/v1",
		Model:       "gpt-5.1",
		TimeoutMs:   30000,
		Temperature: 0.7,
		MaxTokens:   1000,
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("MUXDASH_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MUXDASH_API_BASE"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("MUXDASH_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MUXDASH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MUXDASH_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("MUXDASH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// HasCredential reports whether an API key is configured.
func (c LLMConfig) HasCredential() bool {
	return c.APIKey != ""
}
