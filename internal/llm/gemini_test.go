package llm

import (
	"context"
	"sync"
	"testing"

	"gym-planner/internal/config"
)

func TestGeminiCompleteConcurrent(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), &config.Config{GeminiAPIKey: "test-key"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer client.Close()

	// A canceled context makes each call fail fast without reaching the
	// network; the calls must still be safe to run in parallel.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prompts := []string{"You are a planner.", "You are a different planner."}

	var wg sync.WaitGroup
	for _, prompt := range prompts {
		wg.Add(1)
		go func(prompt string) {
			defer wg.Done()
			if _, err := client.Complete(ctx, prompt, "{}"); err == nil {
				t.Error("expected an error from a canceled context")
			}
		}(prompt)
	}
	wg.Wait()
}
