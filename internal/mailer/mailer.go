// Package mailer sends transactional mail through an HTTP relay
// authenticated with a short-lived JWT.
package mailer

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gym-planner/internal/config"

	"github.com/PuerkitoBio/goquery"
	"github.com/golang-jwt/jwt/v5"
)

// Message is one outgoing email. Text is optional; when empty it is derived
// from HTML so every mail has a plain-text part.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Mailer is a client for the mail relay API.
type Mailer struct {
	relayURL   string
	relayKey   string
	from       string
	httpClient *http.Client
}

// New creates a new relay client.
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		relayURL: cfg.MailRelayURL,
		relayKey: cfg.MailRelayKey,
		from:     cfg.MailFrom,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send relays one message. Non-2xx relay responses are returned as errors
// with the relay's body attached.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if msg.Text == "" && msg.HTML != "" {
		text, err := htmlToText(msg.HTML)
		if err != nil {
			return fmt.Errorf("failed to derive text body: %w", err)
		}
		msg.Text = text
	}

	token, err := m.createRelayToken()
	if err != nil {
		return fmt.Errorf("failed to create relay token: %w", err)
	}

	payload := map[string]string{
		"from":    m.from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
		"text":    msg.Text,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "POST", m.relayURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("relay error: status %d, body: %v", resp.StatusCode, errResp)
	}

	return nil
}

// createRelayToken generates a short-lived JWT from the relay key, which has
// the form id:secret with a hex-encoded secret.
func (m *Mailer) createRelayToken() (string, error) {
	keyParts := strings.Split(m.relayKey, ":")
	if len(keyParts) != 2 {
		return "", fmt.Errorf("invalid relay key format: expected id:secret")
	}

	id := keyParts[0]
	secret, err := hex.DecodeString(keyParts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode secret hex: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
		"aud": "/relay/",
	})
	token.Header["kid"] = id

	return token.SignedString(secret)
}

// htmlToText extracts readable text from an HTML body.
func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return strings.TrimSpace(doc.Find("body").Text()), nil
}
