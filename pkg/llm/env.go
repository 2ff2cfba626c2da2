package llm

import (
	"os"
	"strings"

	"github.com/websage/answerd/pkg/shared/stringutil"
)

// ConfigFromEnv builds a completion config using environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}

	if primary := strings.TrimSpace(os.Getenv("LLM_PROVIDER")); primary != "" {
		cfg.Primary = primary
	}
	if fallbacks := strings.TrimSpace(os.Getenv("LLM_FALLBACKS")); fallbacks != "" {
		cfg.Fallbacks = stringutil.SplitCSV(fallbacks)
	}
	cfg.Mistral.APIKey = stringutil.EnvOr(cfg.Mistral.APIKey, os.Getenv("MISTRAL_API_KEY"))
	cfg.Mistral.Model = stringutil.EnvOr(cfg.Mistral.Model, os.Getenv("MISTRAL_MODEL"))
	cfg.Gemini.APIKey = stringutil.EnvOr(cfg.Gemini.APIKey, os.Getenv("GEMINI_API_KEY"))
	cfg.Gemini.Model = stringutil.EnvOr(cfg.Gemini.Model, os.Getenv("GEMINI_MODEL"))
	cfg.Anthropic.APIKey = stringutil.EnvOr(cfg.Anthropic.APIKey, os.Getenv("ANTHROPIC_API_KEY"))
	cfg.Anthropic.Model = stringutil.EnvOr(cfg.Anthropic.Model, os.Getenv("ANTHROPIC_MODEL"))

	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	primarySet := strings.TrimSpace(cfg.Primary) != ""
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()

	if !primarySet {
		current.Primary = envCfg.Primary
	}
	if current.Mistral.APIKey == "" {
		current.Mistral.APIKey = envCfg.Mistral.APIKey
	}
	if current.Gemini.APIKey == "" {
		current.Gemini.APIKey = envCfg.Gemini.APIKey
	}
	if current.Anthropic.APIKey == "" {
		current.Anthropic.APIKey = envCfg.Anthropic.APIKey
	}

	return current
}
