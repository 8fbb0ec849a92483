package llm

import (
	"context"
	"fmt"

	"gym-planner/internal/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiClient is a client for the Google Gemini API. It is an optional
// last-resort provider in the gateway chain.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(chatTemperature)
	model.SetTopP(chatTopP)
	model.SetMaxOutputTokens(chatMaxTokens)

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string {
	return "gemini"
}

// Complete sends a system prompt and user payload to the Gemini model and
// returns the generated text.
func (c *GeminiClient) Complete(ctx context.Context, systemPrompt, userPayload string) (Completion, error) {
	// Copy the model so concurrent calls never share a SystemInstruction write.
	model := *c.model
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPayload))
	if err != nil {
		return Completion{}, &ProviderError{Provider: c.Name(), Err: fmt.Errorf("failed to generate content: %w", err)}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Completion{}, &ProviderError{Provider: c.Name(), Err: fmt.Errorf("no content generated")}
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Completion{}, &ProviderError{Provider: c.Name(), Err: fmt.Errorf("generated content is not text")}
	}

	completion := Completion{Content: string(text), Usage: TokenUsage{Model: geminiModel}}
	if resp.UsageMetadata != nil {
		completion.Usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		completion.Usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		completion.Usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return completion, nil
}

// Close closes the underlying Gemini client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
