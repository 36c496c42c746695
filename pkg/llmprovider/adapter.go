package llmprovider

import (
	"context"

	"customer-support-agents/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements Provider
func (a *GeminiAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	return text, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
