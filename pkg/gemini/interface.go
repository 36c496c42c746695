package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to the Gemini API.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Complete sends a plain text prompt and returns the first candidate's
	// text. This is the text-to-text entry point used for classification,
	// synthesis and comparison prompts.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the model being used.
	Model() string
}
