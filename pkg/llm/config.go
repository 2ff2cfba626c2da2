package llm

import (
	"slices"
	"strings"
)

const (
	ProviderMistral   = "mistral"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	DefaultTimeoutSecs = 60
	DefaultMaxTokens   = 1024
)

var DefaultFallbackOrder = []string{
	ProviderMistral,
	ProviderGemini,
	ProviderAnthropic,
}

// Config controls completion provider selection and credentials.
type Config struct {
	// Primary is the provider used when a request names none (or names an
	// unrecognized one).
	Primary   string   `yaml:"primary"`
	Fallbacks []string `yaml:"fallbacks"`

	// TimeoutSecs bounds every completion call. Expiry is treated as an
	// ordinary recoverable completion failure.
	TimeoutSecs int `yaml:"timeout_seconds"`
	MaxTokens   int `yaml:"max_tokens"`

	Mistral   MistralConfig   `yaml:"mistral"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
}

type MistralConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Primary) == "" {
		c.Primary = ProviderMistral
	}
	if len(c.Fallbacks) == 0 {
		c.Fallbacks = slices.Clone(DefaultFallbackOrder)
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Mistral.BaseURL == "" {
		c.Mistral.BaseURL = "https://api.mistral.ai/v1"
	}
	if c.Mistral.Model == "" {
		c.Mistral.Model = "mistral-small-latest"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Anthropic.Model == "" {
		c.Anthropic.Model = "claude-3-5-haiku-latest"
	}
	return c
}
