package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type mockProvider struct {
	name    string
	content string
	err     error
	calls   int
	seen    []string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Complete(ctx context.Context, systemPrompt, userPayload string) (Completion, error) {
	m.calls++
	m.seen = append(m.seen, userPayload)
	if m.err != nil {
		return Completion{}, m.err
	}
	return Completion{Content: m.content}, nil
}

func TestGatewayPrimarySucceeds(t *testing.T) {
	primary := &mockProvider{name: "primary", content: "plan"}
	fallback := &mockProvider{name: "fallback", content: "other"}
	gw := NewGateway(primary, fallback)

	completion, err := gw.Complete(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if completion.Content != "plan" {
		t.Errorf("Expected primary content, got '%s'", completion.Content)
	}
	if fallback.calls != 0 {
		t.Errorf("Expected no fallback calls, got %d", fallback.calls)
	}
}

func TestGatewayFallsBackOnce(t *testing.T) {
	primary := &mockProvider{name: "primary", err: &ProviderError{Provider: "primary", Err: fmt.Errorf("boom")}}
	fallback := &mockProvider{name: "fallback", content: "plan"}
	gw := NewGateway(primary, fallback)

	completion, err := gw.Complete(context.Background(), "system", "user payload")
	if err != nil {
		t.Fatalf("Expected fallback to succeed, got %v", err)
	}
	if completion.Content != "plan" {
		t.Errorf("Expected fallback content, got '%s'", completion.Content)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Errorf("Expected exactly one call each, got primary=%d fallback=%d", primary.calls, fallback.calls)
	}
	// The fallback must receive an equivalent payload.
	if fallback.seen[0] != "user payload" {
		t.Errorf("Fallback received different payload: '%s'", fallback.seen[0])
	}
}

func TestGatewayAllFail(t *testing.T) {
	primaryErr := &ProviderError{Provider: "primary", Err: fmt.Errorf("down")}
	fallbackErr := &ProviderError{Provider: "fallback", Err: fmt.Errorf("also down")}
	primary := &mockProvider{name: "primary", err: primaryErr}
	fallback := &mockProvider{name: "fallback", err: fallbackErr}
	gw := NewGateway(primary, fallback)

	_, err := gw.Complete(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("Expected an error when all providers fail")
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Errorf("Expected no further retries, got primary=%d fallback=%d", primary.calls, fallback.calls)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected a ProviderError in the chain, got %v", err)
	}
	if provErr.Provider != "fallback" {
		t.Errorf("Expected the last provider's error, got '%s'", provErr.Provider)
	}
}

func TestGatewayNoProviders(t *testing.T) {
	gw := NewGateway()
	if _, err := gw.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("Expected an error with no providers configured")
	}
}
