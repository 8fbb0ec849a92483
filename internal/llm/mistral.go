package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gym-planner/internal/config"
)

const mistralModel = "mistral-large-latest"

// MistralClient is a client for the Mistral chat-completions API. The wire
// format is OpenAI-compatible.
type MistralClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewMistralClient creates a new Mistral API client.
func NewMistralClient(cfg *config.Config) *MistralClient {
	return &MistralClient{
		apiKey:  cfg.MistralAPIKey,
		baseURL: cfg.MistralBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *MistralClient) Name() string {
	return "mistral"
}

// Complete sends a system prompt and user payload to the Mistral model and
// returns the generated text.
func (c *MistralClient) Complete(ctx context.Context, systemPrompt, userPayload string) (Completion, error) {
	messages := []map[string]string{
		{"role": "system", "content": systemPrompt},
		{"role": "user", "content": userPayload},
	}
	raw, _ := json.Marshal(messages)

	status, body, err := c.Forward(ctx, raw)
	if err != nil {
		return Completion{}, &ProviderError{Provider: c.Name(), Err: err}
	}
	if status != http.StatusOK {
		return Completion{}, &ProviderError{
			Provider: c.Name(),
			Err:      fmt.Errorf("api error: status=%d body=%s", status, string(body)),
		}
	}

	completion, err := decodeChatCompletion(body, mistralModel)
	if err != nil {
		return Completion{}, &ProviderError{Provider: c.Name(), Err: err}
	}
	return completion, nil
}

// Forward sends a raw messages array with the fixed decoding parameters and
// returns the provider response unmodified.
func (c *MistralClient) Forward(ctx context.Context, messages json.RawMessage) (int, []byte, error) {
	reqBody := map[string]interface{}{
		"model":       mistralModel,
		"messages":    messages,
		"temperature": chatTemperature,
		"top_p":       chatTopP,
		"max_tokens":  chatMaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}
