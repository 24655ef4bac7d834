// Package client implements the chat widget's conversation state manager:
// an in-memory message log with send/clear operations that talks to the
// server's chat endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/manthanmittal/portfolio-server/internal/chat"
)

// API is a thin HTTP client for the chat endpoint.
type API struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPI creates an API client for the server at baseURL.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// SendChat posts a message with its history and returns the assistant reply.
// Non-200 responses yield an error carrying the server's user-facing text.
func (a *API) SendChat(ctx context.Context, message string, history []chat.Message) (string, error) {
	body, err := json.Marshal(chat.Request{Message: message, History: history})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	var parsed chat.Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("%s", parsed.Error)
		}
		return "", fmt.Errorf("chat endpoint returned %d", resp.StatusCode)
	}

	return parsed.Message, nil
}
