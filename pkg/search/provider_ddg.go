package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type ddgProvider struct {
	cfg DDGConfig
}

func newDDGProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.DDG.Enabled, true) {
		return nil
	}
	return &ddgProvider{cfg: cfg.DDG}
}

func (p *ddgProvider) Name() string {
	return ProviderDuckDuckGo
}

// Search queries the DuckDuckGo instant answer API. It returns abstract and
// related-topic links only; DuckDuckGo has no free full web result API.
func (p *ddgProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if req.Kind != "" && req.Kind != KindText {
		return nil, fmt.Errorf("duckduckgo: %w", ErrUnsupportedKind)
	}
	apiURL := fmt.Sprintf("https://api.duckduckgo.com/?q=%s&format=json&no_html=1&skip_disambig=1",
		url.QueryEscape(req.Query))

	start := time.Now()
	data, _, err := getJSON(ctx, apiURL, nil, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	type ddgTopic struct {
		Text     string     `json:"Text"`
		FirstURL string     `json:"FirstURL"`
		Topics   []ddgTopic `json:"Topics"`
	}
	var ddgResult struct {
		AbstractText  string     `json:"AbstractText"`
		AbstractURL   string     `json:"AbstractURL"`
		Heading       string     `json:"Heading"`
		RelatedTopics []ddgTopic `json:"RelatedTopics"`
	}
	if err := json.Unmarshal(data, &ddgResult); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	var results []Result
	if ddgResult.AbstractURL != "" {
		results = append(results, Result{
			Title:       strings.TrimSpace(ddgResult.Heading),
			URL:         ddgResult.AbstractURL,
			Description: strings.TrimSpace(ddgResult.AbstractText),
		})
	}
	var appendTopic func(topic ddgTopic)
	appendTopic = func(topic ddgTopic) {
		if topic.FirstURL != "" {
			title, snippet := splitTopicText(topic.Text)
			results = append(results, Result{
				Title:       title,
				URL:         topic.FirstURL,
				Description: snippet,
			})
		}
		for _, child := range topic.Topics {
			appendTopic(child)
		}
	}
	for _, topic := range ddgResult.RelatedTopics {
		appendTopic(topic)
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderDuckDuckGo,
		Count:     len(results),
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}

func splitTopicText(text string) (title string, snippet string) {
	parts := strings.SplitN(text, " - ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(text), ""
}
