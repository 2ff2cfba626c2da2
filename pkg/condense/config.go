package condense

import "fmt"

const (
	DefaultThresholdChars  = 6000
	DefaultWindowChars     = 2000
	DefaultOverlapChars    = 200
	DefaultSummaryMaxChars = 600
)

// Config controls when and how long documents are condensed.
type Config struct {
	// ThresholdChars is the document length above which condensation kicks
	// in. Below it, text passes through untouched.
	ThresholdChars int `yaml:"threshold_chars"`
	// WindowChars is the chunk window size.
	WindowChars int `yaml:"window_chars"`
	// OverlapChars is how many trailing characters of each window reappear
	// at the start of the next one.
	OverlapChars int `yaml:"overlap_chars"`
	// SummaryMaxChars bounds the literal-truncation fallback when a chunk
	// summary call fails.
	SummaryMaxChars int `yaml:"summary_max_chars"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.ThresholdChars <= 0 {
		c.ThresholdChars = DefaultThresholdChars
	}
	if c.WindowChars <= 0 {
		c.WindowChars = DefaultWindowChars
	}
	if c.OverlapChars <= 0 {
		c.OverlapChars = DefaultOverlapChars
	}
	if c.SummaryMaxChars <= 0 {
		c.SummaryMaxChars = DefaultSummaryMaxChars
	}
	return c
}

// Validate enforces the chunking invariant. An overlap at or above the
// window size would stall the chunk cursor, so it is rejected at startup
// rather than guarded per call.
func (c *Config) Validate() error {
	c = c.WithDefaults()
	if c.OverlapChars >= c.WindowChars {
		return fmt.Errorf("condense: overlap_chars (%d) must be smaller than window_chars (%d)",
			c.OverlapChars, c.WindowChars)
	}
	return nil
}
