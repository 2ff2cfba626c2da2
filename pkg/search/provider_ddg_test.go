package search

import (
	"context"
	"errors"
	"testing"
)

func TestDDGProviderRejectsMediaKinds(t *testing.T) {
	provider := &ddgProvider{cfg: DDGConfig{TimeoutSecs: 5}}
	for _, kind := range []Kind{KindImages, KindNews} {
		if _, err := provider.Search(context.Background(), Request{Query: "x", Kind: kind}); !errors.Is(err, ErrUnsupportedKind) {
			t.Fatalf("kind %q: expected ErrUnsupportedKind, got %v", kind, err)
		}
	}
}

func TestSplitTopicText(t *testing.T) {
	title, snippet := splitTopicText("Paris - Capital of France")
	if title != "Paris" || snippet != "Capital of France" {
		t.Fatalf("got %q / %q", title, snippet)
	}
	title, snippet = splitTopicText("Just a title")
	if title != "Just a title" || snippet != "" {
		t.Fatalf("got %q / %q", title, snippet)
	}
}
