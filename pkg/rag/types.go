package rag

// ResponseType is the fixed type tag of every answer payload.
const ResponseType = "response"

// Request is one inbound question.
type Request struct {
	// Content is the natural-language query. Required.
	Content string `json:"content"`
	// Provider optionally names the completion backend. Empty or
	// unrecognized values resolve to the configured primary.
	Provider string `json:"provider,omitempty"`
}

// Response is the answer produced for one request. Sources lists every URL
// the pipeline attempted, including ones whose fetch failed; disclosing a
// broken source is preferred over hiding it.
type Response struct {
	Type     string   `json:"type"`
	Content  string   `json:"content"`
	Sources  []string `json:"sources"`
	Provider string   `json:"provider"`
}

// Config controls the answering pipeline.
type Config struct {
	// MaxSources is the fan-out width: the maximum number of search results
	// fetched concurrently, and the cap on reported sources.
	MaxSources int `yaml:"max_sources"`
}

const DefaultMaxSources = 5

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.MaxSources <= 0 {
		c.MaxSources = DefaultMaxSources
	}
	return c
}
