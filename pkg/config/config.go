// Package config assembles the process-wide configuration: one struct built
// at startup from an optional yaml file plus environment overrides, then
// injected into every component. There are no ambient globals.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/websage/answerd/pkg/condense"
	"github.com/websage/answerd/pkg/llm"
	"github.com/websage/answerd/pkg/rag"
	"github.com/websage/answerd/pkg/scrape"
	"github.com/websage/answerd/pkg/search"
	"github.com/websage/answerd/pkg/shared/stringutil"
)

const DefaultListen = ":8080"

// Config is the full process configuration.
type Config struct {
	Listen    string `yaml:"listen"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "console" or "json"

	Search   *search.Config   `yaml:"search"`
	Scrape   *scrape.Config   `yaml:"scrape"`
	Condense *condense.Config `yaml:"condense"`
	LLM      *llm.Config      `yaml:"llm"`
	RAG      *rag.Config      `yaml:"rag"`
}

// Load reads a yaml config file. An empty path yields an empty config.
// Defaults are applied by ApplyEnv (or WithDefaults) afterwards, so that
// environment overrides can still see which fields the file left unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return cfg, nil
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Listen) == "" {
		c.Listen = DefaultListen
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	c.Search = c.Search.WithDefaults()
	c.Scrape = c.Scrape.WithDefaults()
	c.Condense = c.Condense.WithDefaults()
	c.LLM = c.LLM.WithDefaults()
	c.RAG = c.RAG.WithDefaults()
	return c
}

// ApplyEnv fills fields the config file left empty from environment
// variables, then applies defaults to whatever remains.
func (c *Config) ApplyEnv() *Config {
	if c == nil {
		c = &Config{}
	}
	c.Listen = stringutil.FirstNonEmpty(c.Listen, os.Getenv("LISTEN_ADDR"))
	c.LogLevel = stringutil.FirstNonEmpty(c.LogLevel, os.Getenv("LOG_LEVEL"))
	c.LogFormat = stringutil.FirstNonEmpty(c.LogFormat, os.Getenv("LOG_FORMAT"))
	c.Search = search.ApplyEnvDefaults(c.Search)
	c.LLM = llm.ApplyEnvDefaults(c.LLM)
	return c.WithDefaults()
}

// Validate checks the configuration invariants that must hold before the
// pipeline starts, most importantly the chunking overlap bound.
func (c *Config) Validate() error {
	if err := c.Condense.Validate(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}
