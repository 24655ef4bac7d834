package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/manthanmittal/portfolio-server/internal/chat"
	"github.com/manthanmittal/portfolio-server/internal/guard"
)

// historyLimit is the number of trailing conversation turns forwarded to the
// model; older turns are discarded.
const historyLimit = 10

// HandleChat handles POST /api/chat requests.
//
// The pipeline short-circuits in order: rate limit, body validation,
// sanitization, content screening, then the provider call. Each terminal
// outcome has a distinct response shape; a screened message is a 200 with a
// canned redirect, not an error.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	key := clientKey(r)
	if !h.chatLimiter.Allow(key) {
		Error(w, http.StatusTooManyRequests, h.rateLimitMsg)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req chat.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Message is required")
		return
	}
	if req.Message == "" {
		Error(w, http.StatusBadRequest, "Message is required")
		return
	}

	sanitized := guard.Sanitize(req.Message)
	if sanitized == "" {
		Error(w, http.StatusBadRequest, "Please enter a valid message")
		return
	}

	if h.screener.Blocked(sanitized) {
		slog.Info("Chat message deflected", "client_key", key)
		JSON(w, http.StatusOK, chat.Response{Message: h.redirectMsg})
		return
	}

	history := trimHistory(req.History)
	history = append(history, chat.Message{Role: chat.RoleUser, Content: sanitized})

	slog.Info("Chat request",
		"client_key", key,
		"message_length", len(sanitized),
		"history_turns", len(history)-1,
	)

	reply, err := h.completer.Complete(r.Context(), h.compiler.SystemPrompt(), history)
	if err != nil {
		slog.Error("Chat completion failed", "client_key", key, "error", err)
		Error(w, http.StatusInternalServerError, h.apologyMsg)
		return
	}

	JSON(w, http.StatusOK, chat.Response{Message: reply})
}

// trimHistory keeps the trailing historyLimit turns, sanitizes each turn's
// content, and drops turns with roles other than user/assistant.
func trimHistory(history []chat.Message) []chat.Message {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	trimmed := make([]chat.Message, 0, len(history)+1)
	for _, m := range history {
		if m.Role != chat.RoleUser && m.Role != chat.RoleAssistant {
			continue
		}
		trimmed = append(trimmed, chat.Message{
			Role:    m.Role,
			Content: guard.Sanitize(m.Content),
		})
	}
	return trimmed
}
