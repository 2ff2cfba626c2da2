package search

import (
	"context"
	"errors"
)

// ErrUnsupportedKind is returned by providers that cannot serve the
// requested search vertical. The router treats it like any other provider
// failure and moves on to the next provider in the chain.
var ErrUnsupportedKind = errors.New("search kind not supported by this provider")

// Provider performs a web search against a single backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, req Request) (*Response, error)
}

// registry stores named providers.
type registry struct {
	providers map[string]Provider
}

func newRegistry() *registry {
	return &registry{providers: make(map[string]Provider)}
}

func (r *registry) register(provider Provider) {
	if provider == nil {
		return
	}
	r.providers[provider.Name()] = provider
}

func (r *registry) get(name string) Provider {
	return r.providers[name]
}
