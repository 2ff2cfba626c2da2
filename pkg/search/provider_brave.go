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

type braveProvider struct {
	cfg BraveConfig
}

func newBraveProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.Brave.Enabled, true) {
		return nil
	}
	if strings.TrimSpace(cfg.Brave.APIKey) == "" {
		return nil
	}
	return &braveProvider{cfg: cfg.Brave}
}

func (p *braveProvider) Name() string {
	return ProviderBrave
}

func (p *braveProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if p.cfg.BaseURL == "" {
		return nil, errors.New("brave base_url is empty")
	}
	endpoint, err := p.endpoint(req.Kind)
	if err != nil {
		return nil, err
	}
	searchURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	count := req.Count
	if count <= 0 {
		count = DefaultSearchCount
	}
	queryValues := searchURL.Query()
	queryValues.Set("q", req.Query)
	queryValues.Set("count", fmt.Sprintf("%d", count))
	searchURL.RawQuery = queryValues.Encode()

	start := time.Now()
	data, _, err := getJSON(ctx, searchURL.String(), map[string]string{
		"Accept":               "application/json",
		"X-Subscription-Token": p.cfg.APIKey,
	}, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	results, err := parseBraveResults(req.Kind, data)
	if err != nil {
		return nil, err
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderBrave,
		Count:     len(results),
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}

// endpoint maps a search kind onto the matching Brave API path. The base
// URL configures the web endpoint; the image and news endpoints live next
// to it under the same version prefix.
func (p *braveProvider) endpoint(kind Kind) (string, error) {
	if kind == "" || kind == KindText {
		return p.cfg.BaseURL, nil
	}
	var vertical string
	switch kind {
	case KindImages:
		vertical = "images"
	case KindNews:
		vertical = "news"
	default:
		return "", fmt.Errorf("brave: %w", ErrUnsupportedKind)
	}
	if !strings.Contains(p.cfg.BaseURL, "/web/search") {
		return "", fmt.Errorf("brave base_url %q has no web/search path to derive the %s endpoint from", p.cfg.BaseURL, vertical)
	}
	return strings.Replace(p.cfg.BaseURL, "/web/search", "/"+vertical+"/search", 1), nil
}

func parseBraveResults(kind Kind, data []byte) ([]Result, error) {
	switch kind {
	case "", KindText:
		var resp struct {
			Web struct {
				Results []struct {
					Title       string `json:"title"`
					URL         string `json:"url"`
					Description string `json:"description"`
				} `json:"results"`
			} `json:"web"`
		}
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(resp.Web.Results))
		for _, entry := range resp.Web.Results {
			results = append(results, Result{
				Title:       strings.TrimSpace(entry.Title),
				URL:         entry.URL,
				Description: strings.TrimSpace(entry.Description),
			})
		}
		return results, nil
	case KindImages:
		var resp struct {
			Results []struct {
				Title      string `json:"title"`
				URL        string `json:"url"`
				Properties struct {
					URL string `json:"url"`
				} `json:"properties"`
			} `json:"results"`
		}
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(resp.Results))
		for _, entry := range resp.Results {
			results = append(results, Result{
				Title:    strings.TrimSpace(entry.Title),
				URL:      entry.URL,
				ImageURL: entry.Properties.URL,
			})
		}
		return results, nil
	case KindNews:
		var resp struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		}
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, err
		}
		results := make([]Result, 0, len(resp.Results))
		for _, entry := range resp.Results {
			results = append(results, Result{
				Title:       strings.TrimSpace(entry.Title),
				URL:         entry.URL,
				Description: strings.TrimSpace(entry.Description),
			})
		}
		return results, nil
	default:
		return nil, fmt.Errorf("brave: %w", ErrUnsupportedKind)
	}
}
