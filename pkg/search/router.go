package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Router executes searches against a configured provider chain.
type Router struct {
	cfg      *Config
	registry *registry
	log      zerolog.Logger
}

// NewRouter builds a router from config, registering every enabled provider.
func NewRouter(cfg *Config, log zerolog.Logger) *Router {
	cfg = cfg.WithDefaults()
	reg := newRegistry()
	if p := newSearXNGProvider(cfg); p != nil {
		reg.register(p)
	}
	if p := newBraveProvider(cfg); p != nil {
		reg.register(p)
	}
	if p := newDDGProvider(cfg); p != nil {
		reg.register(p)
	}
	return &Router{
		cfg:      cfg,
		registry: reg,
		log:      log.With().Str("component", "search").Logger(),
	}
}

// Search walks the provider chain and returns the first successful response.
func (r *Router) Search(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("missing query")
	}
	req = normalizeRequest(req)

	var lastErr error
	for _, name := range r.order() {
		provider := r.registry.get(name)
		if provider == nil {
			continue
		}
		resp, err := provider.Search(ctx, req)
		if err != nil {
			r.log.Warn().Err(err).Str("provider", name).Msg("Search provider failed")
			lastErr = err
			continue
		}
		if resp == nil {
			lastErr = fmt.Errorf("provider %s returned empty response", name)
			continue
		}
		if resp.Provider == "" {
			resp.Provider = name
		}
		if resp.Count == 0 {
			resp.Count = len(resp.Results)
		}
		return resp, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.New("no search providers available")
}

// Links is the fail-soft adapter used by the answering pipeline: it returns
// the top result URLs and degrades any upstream failure to an empty list.
// "No links found" is a handleable condition there, not an exceptional one.
func (r *Router) Links(ctx context.Context, query string, max int) []string {
	resp, err := r.Search(ctx, Request{Query: query, Count: max})
	if err != nil {
		r.log.Warn().Err(err).Str("query", query).Msg("Search failed, continuing with no links")
		return nil
	}
	return resp.URLs(max)
}

func (r *Router) order() []string {
	order := make([]string, 0, len(r.cfg.Fallbacks)+1)
	provider := strings.TrimSpace(r.cfg.Provider)
	if provider != "" && provider != "auto" {
		order = append(order, provider)
	}
	order = append(order, r.cfg.Fallbacks...)
	return dedupeOrder(order)
}

func normalizeRequest(req Request) Request {
	if req.Kind == "" {
		req.Kind = KindText
	}
	if req.Count <= 0 {
		req.Count = DefaultSearchCount
	}
	if req.Count > MaxSearchCount {
		req.Count = MaxSearchCount
	}
	return req
}

func dedupeOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	if len(result) == 0 {
		return append([]string{}, DefaultFallbackOrder...)
	}
	return result
}
