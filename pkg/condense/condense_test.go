package condense

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/websage/answerd/pkg/scrape"
)

func testCondenser(cfg *Config) *Condenser {
	return New(cfg, zerolog.Nop())
}

func TestCondenseShortTextPassesThrough(t *testing.T) {
	c := testCondenser(&Config{ThresholdChars: 100})
	calls := 0
	complete := func(ctx context.Context, prompt string) (string, error) {
		calls++
		return "summary", nil
	}

	got := c.Condense(context.Background(), complete, "short text")
	if got != "short text" {
		t.Fatalf("got %q", got)
	}
	if calls != 0 {
		t.Fatalf("expected no completion calls, got %d", calls)
	}
}

func TestCondenseSummarizesEachChunkInOrder(t *testing.T) {
	c := testCondenser(&Config{ThresholdChars: 10, WindowChars: 20, OverlapChars: 5})
	var prompts []string
	complete := func(ctx context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "S", nil
	}

	text := strings.Repeat("abcde", 10) // 50 chars, several windows
	got := c.Condense(context.Background(), complete, text)

	wantChunks := len(Chunk(text, 20, 5))
	if len(prompts) != wantChunks {
		t.Fatalf("expected %d completion calls, got %d", wantChunks, len(prompts))
	}
	if got != strings.TrimSpace(strings.Repeat("S ", wantChunks)) {
		t.Fatalf("got %q", got)
	}
}

func TestCondenseFallsBackToTruncationOnFailure(t *testing.T) {
	c := testCondenser(&Config{ThresholdChars: 10, WindowChars: 20, OverlapChars: 5, SummaryMaxChars: 8})
	complete := func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("provider down")
	}

	text := strings.Repeat("x", 30)
	got := c.Condense(context.Background(), complete, text)
	if got == "" {
		t.Fatal("condensation must never fail hard")
	}
	for _, part := range strings.Fields(got) {
		if len(part) > 8 {
			t.Fatalf("fallback chunk not truncated: %q", part)
		}
	}
}

func TestCondenseSkipsErrorSentinels(t *testing.T) {
	c := testCondenser(&Config{ThresholdChars: 5})
	complete := func(ctx context.Context, prompt string) (string, error) {
		t.Fatal("sentinel must never be summarized")
		return "", nil
	}

	sentinel := scrape.ErrorPrefix + " connection refused, plus enough text to cross the threshold"
	if got := c.Condense(context.Background(), complete, sentinel); got != sentinel {
		t.Fatalf("got %q", got)
	}
}
