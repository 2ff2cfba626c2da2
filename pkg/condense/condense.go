package condense

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/websage/answerd/pkg/scrape"
)

const summaryPrompt = "Condense the following text. Preserve every concrete fact, name, number and date. " +
	"Reply with only the condensed text, no preamble.\n\n%s"

// Completer issues a single completion call against the provider chosen for
// the current request.
type Completer func(ctx context.Context, prompt string) (string, error)

// Condenser shrinks long documents through chunk-wise summarization so the
// final prompt stays within provider limits. It is a best-effort
// optimization: every failure degrades to literal truncation.
type Condenser struct {
	cfg *Config
	log zerolog.Logger
}

// New builds a condenser. cfg must have passed Validate.
func New(cfg *Config, log zerolog.Logger) *Condenser {
	return &Condenser{
		cfg: cfg.WithDefaults(),
		log: log.With().Str("component", "condense").Logger(),
	}
}

// Condense returns text unchanged when it is short enough or is a fetch
// error sentinel; otherwise it summarizes each chunk through complete and
// joins the summaries in chunk order.
func (c *Condenser) Condense(ctx context.Context, complete Completer, text string) string {
	if scrape.IsError(text) {
		return text
	}
	if len(text) <= c.cfg.ThresholdChars {
		return text
	}

	chunks := Chunk(text, c.cfg.WindowChars, c.cfg.OverlapChars)
	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := complete(ctx, fmt.Sprintf(summaryPrompt, chunk))
		summary = strings.TrimSpace(summary)
		if err != nil || summary == "" {
			if err != nil {
				c.log.Warn().Err(err).Int("chunk", i).Msg("Chunk summarization failed, truncating instead")
			}
			summary = truncateChunk(chunk, c.cfg.SummaryMaxChars)
		}
		summaries = append(summaries, summary)
	}
	return strings.Join(summaries, " ")
}

func truncateChunk(chunk string, maxChars int) string {
	chunk = strings.TrimSpace(chunk)
	if maxChars > 0 && len(chunk) > maxChars {
		return chunk[:maxChars]
	}
	return chunk
}
