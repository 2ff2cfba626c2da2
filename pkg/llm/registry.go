package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnavailable means no supported provider has a credential configured.
var ErrUnavailable = errors.New("no completion provider is configured")

// Registry maps provider identifiers to completion backends. Only providers
// whose credential is present at startup are registered, so resolution is a
// pure lookup over the configured chain.
type Registry struct {
	cfg       *Config
	providers map[string]Provider
	log       zerolog.Logger
}

// NewRegistry builds SDK clients for every credentialed provider.
func NewRegistry(ctx context.Context, cfg *Config, log zerolog.Logger) (*Registry, error) {
	cfg = cfg.WithDefaults()
	providers := make(map[string]Provider)

	if p := newMistralProvider(cfg); p != nil {
		providers[p.Name()] = p
	}
	gemini, err := newGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if gemini != nil {
		providers[gemini.Name()] = gemini
	}
	if p := newAnthropicProvider(cfg); p != nil {
		providers[p.Name()] = p
	}

	return &Registry{
		cfg:       cfg,
		providers: providers,
		log:       log.With().Str("component", "llm").Logger(),
	}, nil
}

// Resolve picks the provider for one request. The requested identifier wins
// when its credential is present; an empty or unrecognized identifier means
// the configured primary. Otherwise the fallback chain is walked and the
// substitution is logged. With no credentialed provider at all, resolution
// fails with ErrUnavailable.
func (r *Registry) Resolve(requested string) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(requested))
	if _, supported := supportedProviders[name]; !supported {
		name = r.cfg.Primary
	}

	chain := make([]string, 0, len(r.cfg.Fallbacks)+1)
	chain = append(chain, name)
	chain = append(chain, r.cfg.Fallbacks...)

	seen := make(map[string]bool, len(chain))
	for _, candidate := range chain {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		provider, ok := r.providers[candidate]
		if !ok {
			continue
		}
		if candidate != name {
			r.log.Info().
				Str("requested", name).
				Str("resolved", candidate).
				Msg("Requested provider has no credential, falling back")
		}
		return provider, nil
	}
	return nil, ErrUnavailable
}

// Complete runs one completion call against the resolved provider with the
// configured timeout applied. Expiry surfaces as an ordinary error for the
// caller to absorb.
func (r *Registry) Complete(ctx context.Context, provider Provider, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.TimeoutSecs)*time.Second)
	defer cancel()
	return provider.Complete(ctx, prompt)
}

var supportedProviders = map[string]struct{}{
	ProviderMistral:   {},
	ProviderGemini:    {},
	ProviderAnthropic: {},
}
