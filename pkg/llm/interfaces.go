// Package llm provides an OpenAI-compatible text completion client.
package llm

import "context"

// CompletionOptions control the sampling budget for a single completion
// call. Each pipeline step uses its own budget.
type CompletionOptions struct {
	Temperature float32
	MaxTokens   int
}

// CompletionClient is the boundary to the completion service. The
// assistant treats it as text-in/text-out; use this interface for
// dependency injection to enable mocking in tests.
type CompletionClient interface {
	// Complete submits a prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

	// GetModel returns the configured model name.
	GetModel() string
}

// Ensure Client implements CompletionClient at compile time.
var _ CompletionClient = (*Client)(nil)
