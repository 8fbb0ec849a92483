package llm

import (
	"context"
	"fmt"
)

// Decoding parameters shared by every chat call. The plan format is strict,
// so sampling is kept near-deterministic.
const (
	chatTemperature = 0.1
	chatTopP        = 1.0
	chatMaxTokens   = 2048
)

// TokenUsage tracks the tokens consumed by a request.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// Completion contains the generated text and metadata like token usage.
type Completion struct {
	Content string
	Usage   TokenUsage
}

// ChatProvider is a chat-completion backend. Complete sends a system prompt
// and a user payload and returns the first choice's message content.
type ChatProvider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userPayload string) (Completion, error)
}

// ProviderError wraps a failure from a single provider so the gateway can
// report which backend failed.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
