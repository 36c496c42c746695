package llmprovider

import "context"

// Provider defines the text-to-text interface for LLM providers.
// The orchestrator and the validation harness build all prompts themselves
// and parse the free-text reply, so a provider only needs one operation.
type Provider interface {
	// Complete sends a prompt and returns the model's text reply.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g., "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}
