package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/websage/answerd/pkg/condense"
	"github.com/websage/answerd/pkg/llm"
	"github.com/websage/answerd/pkg/scrape"
)

// ErrEmptyContent is the only hard failure the pipeline produces; every
// operational problem downstream degrades into a well-formed answer instead.
var ErrEmptyContent = errors.New("missing content in request")

const (
	answerPrompt     = "Answer the question: %s\n\nHere is the information found:\n%s"
	emptyContextNote = "No information found."
)

// Searcher returns the top result URLs for a query, an empty list when the
// search capability is unavailable or finds nothing.
type Searcher interface {
	Links(ctx context.Context, query string, max int) []string
}

// Fetcher retrieves one URL and always yields text, a sentinel on failure.
type Fetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Condenser shrinks an oversized document through the given completer.
type Condenser interface {
	Condense(ctx context.Context, complete condense.Completer, text string) string
}

// Registry resolves and runs completion providers.
type Registry interface {
	Resolve(requested string) (llm.Provider, error)
	Complete(ctx context.Context, provider llm.Provider, prompt string) (string, error)
}

// Pipeline coordinates search, concurrent extraction, condensation and
// provider-routed completion for one request at a time. It keeps no state
// across requests.
type Pipeline struct {
	cfg       *Config
	searcher  Searcher
	fetcher   Fetcher
	condenser Condenser
	registry  Registry
	log       zerolog.Logger
}

// NewPipeline wires the pipeline stages together.
func NewPipeline(cfg *Config, searcher Searcher, fetcher Fetcher, condenser Condenser, registry Registry, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg.WithDefaults(),
		searcher:  searcher,
		fetcher:   fetcher,
		condenser: condenser,
		registry:  registry,
		log:       log.With().Str("component", "rag").Logger(),
	}
}

// Answer runs the full pipeline. The returned error is non-nil only for
// input validation failures; everything else produces a degraded answer.
func (p *Pipeline) Answer(ctx context.Context, req Request) (*Response, error) {
	query := strings.TrimSpace(req.Content)
	if query == "" {
		return nil, ErrEmptyContent
	}

	provider, err := p.registry.Resolve(req.Provider)
	if err != nil {
		p.log.Warn().Err(err).Msg("No completion provider available")
		return &Response{
			Type:     ResponseType,
			Content:  "No language model provider is configured. Set a provider API key and try again.",
			Sources:  []string{},
			Provider: "",
		}, nil
	}

	links := p.searcher.Links(ctx, query, p.cfg.MaxSources)
	if len(links) == 0 {
		return &Response{
			Type:     ResponseType,
			Content:  fmt.Sprintf("I couldn't find relevant information about '%s'.", query),
			Sources:  []string{},
			Provider: provider.Name(),
		}, nil
	}

	documents := p.fetchAll(ctx, links)

	complete := func(ctx context.Context, prompt string) (string, error) {
		return p.registry.Complete(ctx, provider, prompt)
	}
	parts := make([]string, 0, len(documents))
	for _, text := range documents {
		if scrape.IsError(text) || strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, p.condenser.Condense(ctx, complete, text))
	}

	joined := strings.Join(parts, "\n\n")
	if joined == "" {
		joined = emptyContextNote
	}
	prompt := fmt.Sprintf(answerPrompt, query, joined)

	answer, err := p.registry.Complete(ctx, provider, prompt)
	if err != nil {
		p.log.Error().Err(err).Str("provider", provider.Name()).Msg("Completion failed")
		answer = fmt.Sprintf("I'm sorry, I was unable to generate an answer right now (%v). Please try again later.", err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = "I'm sorry, the language model returned an empty answer. Please try again."
	}

	return &Response{
		Type:     ResponseType,
		Content:  answer,
		Sources:  links,
		Provider: provider.Name(),
	}, nil
}

// fetchAll fans out one fetch task per URL and waits for the full width to
// finish. Failures become sentinel values, never a reason to cancel
// siblings, so wall-clock time is bounded by one fetch timeout rather than
// by the number of URLs.
func (p *Pipeline) fetchAll(ctx context.Context, urls []string) []string {
	documents := make([]string, len(urls))
	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			documents[i] = p.fetcher.Fetch(ctx, url)
		}(i, url)
	}
	wg.Wait()
	return documents
}
