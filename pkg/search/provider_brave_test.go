package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func braveTestServer(t *testing.T) (*httptest.Server, *braveProvider) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get("X-Subscription-Token"); token != "secret" {
			t.Errorf("missing subscription token, got %q", token)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/res/v1/web/search":
			_, _ = w.Write([]byte(`{"web":{"results":[
				{"title":"Paris","url":"https://a.example","description":"Capital of France"}
			]}}`))
		case "/res/v1/images/search":
			_, _ = w.Write([]byte(`{"results":[
				{"title":"Tower","url":"https://page.example","properties":{"url":"https://img.example/tower.jpg"}}
			]}`))
		case "/res/v1/news/search":
			_, _ = w.Write([]byte(`{"results":[
				{"title":"Headline","url":"https://news.example/story","description":"Something happened"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	provider := &braveProvider{cfg: BraveConfig{
		APIKey:      "secret",
		BaseURL:     server.URL + "/res/v1/web/search",
		TimeoutSecs: 5,
	}}
	return server, provider
}

func TestBraveProviderWebSearch(t *testing.T) {
	server, provider := braveTestServer(t)
	defer server.Close()

	resp, err := provider.Search(context.Background(), Request{Query: "capital of France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].URL != "https://a.example" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
}

func TestBraveProviderImageSearch(t *testing.T) {
	server, provider := braveTestServer(t)
	defer server.Close()

	resp, err := provider.Search(context.Background(), Request{Query: "eiffel tower", Kind: KindImages})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := resp.Results[0]
	if got.ImageURL != "https://img.example/tower.jpg" {
		t.Fatalf("image url not mapped: %+v", got)
	}
	if got.URL != "https://page.example" {
		t.Fatalf("hosting page not mapped: %+v", got)
	}
}

func TestBraveProviderNewsSearch(t *testing.T) {
	server, provider := braveTestServer(t)
	defer server.Close()

	resp, err := provider.Search(context.Background(), Request{Query: "latest", Kind: KindNews})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Results[0].URL != "https://news.example/story" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
	if resp.Results[0].Description != "Something happened" {
		t.Fatalf("description not mapped: %+v", resp.Results[0])
	}
}

func TestBraveProviderRejectsUnknownKind(t *testing.T) {
	provider := &braveProvider{cfg: BraveConfig{
		APIKey:      "secret",
		BaseURL:     "https://api.search.brave.com/res/v1/web/search",
		TimeoutSecs: 5,
	}}
	_, err := provider.Search(context.Background(), Request{Query: "x", Kind: Kind("video")})
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}
