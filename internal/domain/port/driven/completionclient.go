package driven

import "context"

// CompletionClient defines the driven port for the chat completion API: one
// synchronous completion per call, returning the raw text of the first
// choice. Retry policy belongs to the caller, not the adapter.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
