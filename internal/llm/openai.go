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

const openAIModel = "gpt-4.1-mini"

// OpenAIClient is a client for the OpenAI chat-completions API.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI API client.
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: cfg.OpenAIBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

// Complete sends a system prompt and user payload to the OpenAI model and
// returns the generated text.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPayload string) (Completion, error) {
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

	completion, err := decodeChatCompletion(body, openAIModel)
	if err != nil {
		return Completion{}, &ProviderError{Provider: c.Name(), Err: err}
	}
	return completion, nil
}

// Forward sends a raw messages array with the fixed decoding parameters and
// returns the provider response unmodified.
func (c *OpenAIClient) Forward(ctx context.Context, messages json.RawMessage) (int, []byte, error) {
	reqBody := map[string]interface{}{
		"model":       openAIModel,
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

// decodeChatCompletion extracts the first choice and token usage from an
// OpenAI-compatible chat-completions response body.
func decodeChatCompletion(body []byte, model string) (Completion, error) {
	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}

	if err := json.Unmarshal(body, &chatResp); err != nil {
		return Completion{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return Completion{}, fmt.Errorf("no content generated")
	}

	return Completion{
		Content: chatResp.Choices[0].Message.Content,
		Usage: TokenUsage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
			Model:            model,
		},
	}, nil
}
