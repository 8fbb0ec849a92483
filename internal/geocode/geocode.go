// Package geocode proxies location autocomplete to Geoapify.
package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gym-planner/internal/config"
)

const autocompleteLimit = 5

// Client is a Geoapify geocoding client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Geoapify client.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.GeoapifyBaseURL,
		apiKey:  cfg.GeoapifyKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Autocomplete returns the provider's suggestion JSON unmodified.
func (c *Client) Autocomplete(ctx context.Context, text string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/v1/geocode/autocomplete?text=%s&limit=%d&apiKey=%s",
		c.baseURL, url.QueryEscape(text), autocompleteLimit, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode api error: status %d, body: %s", resp.StatusCode, body)
	}

	return body, nil
}
