package llm

import (
	"context"
	"fmt"
	"log"
)

// Gateway tries an ordered list of chat providers until one succeeds. Each
// provider gets exactly one attempt per call; when every provider fails, the
// last error is returned and the caller must treat the request as failed.
type Gateway struct {
	providers []ChatProvider
}

// NewGateway creates a Gateway over the given providers, tried in order.
func NewGateway(providers ...ChatProvider) *Gateway {
	return &Gateway{providers: providers}
}

// Complete sends the prompt pair to each provider in order and returns the
// first successful completion.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userPayload string) (Completion, error) {
	if len(g.providers) == 0 {
		return Completion{}, fmt.Errorf("no chat providers configured")
	}

	var lastErr error
	for _, p := range g.providers {
		completion, err := p.Complete(ctx, systemPrompt, userPayload)
		if err != nil {
			log.Printf("[llm] provider %s failed: %v", p.Name(), err)
			lastErr = err
			continue
		}
		return completion, nil
	}

	return Completion{}, fmt.Errorf("all chat providers failed: %w", lastErr)
}
