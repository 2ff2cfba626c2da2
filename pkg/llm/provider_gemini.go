package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int
}

func newGeminiProvider(ctx context.Context, cfg *Config) (Provider, error) {
	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiProvider{
		client:    client,
		model:     cfg.Gemini.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

func (p *geminiProvider) Name() string {
	return ProviderGemini
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var genCfg *genai.GenerateContentConfig
	if p.maxTokens > 0 {
		genCfg = &genai.GenerateContentConfig{MaxOutputTokens: int32(p.maxTokens)}
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}
