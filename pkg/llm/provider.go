package llm

import "context"

// Provider issues completion calls against a single LLM backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
