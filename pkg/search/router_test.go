package search

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeProvider struct {
	name string
	resp *Response
	err  error
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Search(ctx context.Context, req Request) (*Response, error) {
	return p.resp, p.err
}

func newTestRouter(cfg *Config, providers ...Provider) *Router {
	r := &Router{
		cfg:      cfg.WithDefaults(),
		registry: newRegistry(),
		log:      zerolog.Nop(),
	}
	for _, p := range providers {
		r.registry.register(p)
	}
	return r
}

func TestRouterFallsBackToNextProvider(t *testing.T) {
	cfg := &Config{Provider: "a", Fallbacks: []string{"b"}}
	router := newTestRouter(cfg,
		&fakeProvider{name: "a", err: errors.New("quota exceeded")},
		&fakeProvider{name: "b", resp: &Response{Results: []Result{{URL: "https://b.example"}}}},
	)

	resp, err := router.Search(context.Background(), Request{Query: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Provider != "b" {
		t.Fatalf("expected provider b, got %q", resp.Provider)
	}
}

func TestRouterFallsBackWhenKindUnsupported(t *testing.T) {
	cfg := &Config{Provider: "a", Fallbacks: []string{"b"}}
	router := newTestRouter(cfg,
		&fakeProvider{name: "a", err: ErrUnsupportedKind},
		&fakeProvider{name: "b", resp: &Response{Results: []Result{
			{URL: "https://page.example", ImageURL: "https://img.example/cat.jpg"},
		}}},
	)

	resp, err := router.Search(context.Background(), Request{Query: "cats", Kind: KindImages})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Provider != "b" {
		t.Fatalf("expected provider b to serve the image search, got %q", resp.Provider)
	}
	if resp.Results[0].ImageURL != "https://img.example/cat.jpg" {
		t.Fatalf("image url lost: %+v", resp.Results[0])
	}
}

func TestRouterRejectsEmptyQuery(t *testing.T) {
	router := newTestRouter(&Config{Provider: "a"}, &fakeProvider{name: "a", resp: &Response{}})
	if _, err := router.Search(context.Background(), Request{Query: "   "}); err == nil {
		t.Fatalf("expected error for blank query")
	}
}

func TestLinksDegradesFailureToEmpty(t *testing.T) {
	cfg := &Config{Provider: "a", Fallbacks: []string{"a"}}
	router := newTestRouter(cfg, &fakeProvider{name: "a", err: errors.New("network down")})

	links := router.Links(context.Background(), "anything", 5)
	if len(links) != 0 {
		t.Fatalf("expected no links, got %v", links)
	}
}

func TestLinksCapsResultCount(t *testing.T) {
	resp := &Response{Results: []Result{
		{URL: "https://1.example"},
		{URL: "https://2.example"},
		{URL: "https://3.example"},
	}}
	cfg := &Config{Provider: "a", Fallbacks: []string{"a"}}
	router := newTestRouter(cfg, &fakeProvider{name: "a", resp: resp})

	links := router.Links(context.Background(), "anything", 2)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0] != "https://1.example" || links[1] != "https://2.example" {
		t.Fatalf("links out of order: %v", links)
	}
}

func TestDedupeOrderDropsRepeats(t *testing.T) {
	got := dedupeOrder([]string{"searxng", " brave ", "searxng", ""})
	if len(got) != 2 || got[0] != "searxng" || got[1] != "brave" {
		t.Fatalf("unexpected order: %v", got)
	}
}
