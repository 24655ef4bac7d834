// Package llm calls the chat-completion endpoint of an OpenAI-compatible
// provider. The client is stateless per request and performs no retries;
// retry policy belongs to callers.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/manthanmittal/portfolio-server/internal/chat"
)

const (
	// DefaultModel is the completion model used when none is configured.
	DefaultModel = "moonshotai/kimi-k2.5"
	// DefaultBaseURL is the completion endpoint used when none is configured.
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1/chat/completions"

	maxTokens   = 600
	temperature = 0.7
	topP        = 1.0

	// fallbackReply is returned when the provider answers 2xx with empty
	// content. Callers never receive an empty string.
	fallbackReply = "I'm sorry, I couldn't generate a response. Please try again."
)

// ErrNotConfigured is returned when no API credential is set. It is a
// configuration error, distinct from runtime provider failures.
var ErrNotConfigured = errors.New("llm: API key is not configured")

// StatusError is a non-2xx provider response. The upstream body is logged
// for operators but never carried to end users.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm: provider returned %d", e.StatusCode)
}

// Config holds client settings. Zero-value Model and BaseURL fall back to
// the documented defaults.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client issues non-streaming chat-completion requests.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a completion client.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type completionRequest struct {
	Model       string         `json:"model"`
	Messages    []chat.Message `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature float64        `json:"temperature"`
	TopP        float64        `json:"top_p"`
	Stream      bool           `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the system prompt followed by the conversation history and
// returns the model's reply text. The reply is never empty on success.
func (c *Client) Complete(ctx context.Context, systemPrompt string, history []chat.Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	messages := make([]chat.Message, 0, len(history)+1)
	messages = append(messages, chat.Message{Role: chat.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Error("Provider returned error status",
			"status", resp.StatusCode,
			"body", string(detail),
		)
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return fallbackReply, nil
	}
	reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if reply == "" {
		return fallbackReply, nil
	}
	return reply, nil
}
