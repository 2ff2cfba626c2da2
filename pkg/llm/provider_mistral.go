package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// mistralProvider talks to Mistral's OpenAI-compatible chat completion
// endpoint through the OpenAI SDK with a swapped base URL.
type mistralProvider struct {
	client    openai.Client
	model     string
	maxTokens int
}

func newMistralProvider(cfg *Config) Provider {
	if strings.TrimSpace(cfg.Mistral.APIKey) == "" {
		return nil
	}
	client := openai.NewClient(
		option.WithAPIKey(cfg.Mistral.APIKey),
		option.WithBaseURL(cfg.Mistral.BaseURL),
	)
	return &mistralProvider{
		client:    client,
		model:     cfg.Mistral.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (p *mistralProvider) Name() string {
	return ProviderMistral
}

func (p *mistralProvider) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if p.maxTokens > 0 {
		req.MaxTokens = openai.Int(int64(p.maxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mistral completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("mistral returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
