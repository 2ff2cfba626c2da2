package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type searxngProvider struct {
	cfg SearXNGConfig
}

func newSearXNGProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.SearXNG.Enabled, true) {
		return nil
	}
	return &searxngProvider{cfg: cfg.SearXNG}
}

func (p *searxngProvider) Name() string {
	return ProviderSearXNG
}

func (p *searxngProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if p.cfg.BaseURL == "" {
		return nil, errors.New("searxng base_url is empty")
	}
	searchURL, err := url.Parse(strings.TrimSuffix(p.cfg.BaseURL, "/") + "/search")
	if err != nil {
		return nil, err
	}
	queryValues := searchURL.Query()
	queryValues.Set("q", req.Query)
	queryValues.Set("format", "json")
	switch req.Kind {
	case "", KindText:
	case KindImages:
		queryValues.Set("categories", "images")
	case KindNews:
		queryValues.Set("categories", "news")
	default:
		return nil, fmt.Errorf("searxng: %w", ErrUnsupportedKind)
	}
	searchURL.RawQuery = queryValues.Encode()

	start := time.Now()
	data, _, err := getJSON(ctx, searchURL.String(), map[string]string{
		"Accept": "application/json",
	}, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, fmt.Errorf("searxng request failed: %w", err)
	}

	var resp struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
			ImgSrc  string `json:"img_src"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("searxng response malformed: %w", err)
	}

	results := make([]Result, 0, len(resp.Results))
	for _, entry := range resp.Results {
		results = append(results, Result{
			Title:       strings.TrimSpace(entry.Title),
			URL:         entry.URL,
			Description: strings.TrimSpace(entry.Content),
			ImageURL:    entry.ImgSrc,
		})
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderSearXNG,
		Count:     len(results),
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}
