package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/config"
)

// OpenRouterClient calls an OpenAI-compatible chat-completions endpoint
type OpenRouterClient struct {
	baseURL string
	apiKey  string
	model   string
	referer string
	client  *http.Client
}

// NewOpenRouterClient builds a client from advisor settings
func NewOpenRouterClient(s config.AdvisorSettings) *OpenRouterClient {
	return &OpenRouterClient{
		baseURL: strings.TrimRight(s.BaseURL, "/"),
		apiKey:  s.APIKey,
		model:   s.Model,
		referer: s.Referer,
		client: &http.Client{
			Timeout: s.Timeout,
		},
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GetAdvice sends the conversation and returns the first choice's content
func (c *OpenRouterClient) GetAdvice(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key", ErrNotConfigured)
	}

	wire := make([]Message, len(messages))
	for i, m := range messages {
		wire[i] = Message{Role: WireRole(m.Role), Content: m.Content}
	}

	payload, err := json.Marshal(chatRequest{Model: c.model, Messages: wire})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", fmt.Errorf("%w: provider error: %s", ErrUnavailable, decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrUnavailable)
	}

	return decoded.Choices[0].Message.Content, nil
}
