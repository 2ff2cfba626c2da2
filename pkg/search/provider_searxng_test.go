package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearXNGProviderParsesResults(t *testing.T) {
	var gotQuery, gotFormat string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotFormat = r.URL.Query().Get("format")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"title":"Paris","url":"https://a.example","content":"Capital of France"},
			{"title":"France","url":"https://b.example","content":"A country"}
		]}`))
	}))
	defer server.Close()

	provider := &searxngProvider{cfg: SearXNGConfig{BaseURL: server.URL, TimeoutSecs: 5}}
	resp, err := provider.Search(context.Background(), Request{Query: "capital of France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "capital of France" {
		t.Fatalf("query not forwarded, got %q", gotQuery)
	}
	if gotFormat != "json" {
		t.Fatalf("expected format=json, got %q", gotFormat)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].URL != "https://a.example" {
		t.Fatalf("unexpected first url: %q", resp.Results[0].URL)
	}
}

func TestSearXNGProviderImageSearch(t *testing.T) {
	var gotCategories string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategories = r.URL.Query().Get("categories")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"title":"Eiffel Tower","url":"https://page.example","img_src":"https://img.example/tower.jpg"}
		]}`))
	}))
	defer server.Close()

	provider := &searxngProvider{cfg: SearXNGConfig{BaseURL: server.URL, TimeoutSecs: 5}}
	resp, err := provider.Search(context.Background(), Request{Query: "eiffel tower", Kind: KindImages})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCategories != "images" {
		t.Fatalf("expected categories=images, got %q", gotCategories)
	}
	if resp.Results[0].ImageURL != "https://img.example/tower.jpg" {
		t.Fatalf("img_src not mapped: %+v", resp.Results[0])
	}
	if resp.Results[0].URL != "https://page.example" {
		t.Fatalf("page url not mapped: %+v", resp.Results[0])
	}
}

func TestSearXNGProviderNewsSearch(t *testing.T) {
	var gotCategories string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategories = r.URL.Query().Get("categories")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"title":"Headline","url":"https://news.example/story","content":"Something happened"}
		]}`))
	}))
	defer server.Close()

	provider := &searxngProvider{cfg: SearXNGConfig{BaseURL: server.URL, TimeoutSecs: 5}}
	resp, err := provider.Search(context.Background(), Request{Query: "latest", Kind: KindNews})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCategories != "news" {
		t.Fatalf("expected categories=news, got %q", gotCategories)
	}
	if resp.Results[0].URL != "https://news.example/story" {
		t.Fatalf("unexpected result: %+v", resp.Results[0])
	}
}

func TestSearXNGProviderErrorsOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := &searxngProvider{cfg: SearXNGConfig{BaseURL: server.URL, TimeoutSecs: 5}}
	if _, err := provider.Search(context.Background(), Request{Query: "x"}); err == nil {
		t.Fatalf("expected error for 429 response")
	}
}
