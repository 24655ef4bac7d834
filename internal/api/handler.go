// Package api provides HTTP handlers for the portfolio API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/manthanmittal/portfolio-server/internal/chat"
	"github.com/manthanmittal/portfolio-server/internal/guard"
	"github.com/manthanmittal/portfolio-server/internal/knowledge"
	"github.com/manthanmittal/portfolio-server/internal/ratelimit"
	"github.com/manthanmittal/portfolio-server/internal/store"
)

// maxRequestBodySize is the maximum allowed request body size (1MB).
const maxRequestBodySize = 1 << 20

// Completer produces a model reply for a system prompt and conversation
// history. Satisfied by llm.Client; tests supply fakes.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []chat.Message) (string, error)
}

// Handler serves the chat and contact endpoints.
type Handler struct {
	compiler       *knowledge.Compiler
	completer      Completer
	screener       guard.Screener
	chatLimiter    *ratelimit.Limiter
	contactLimiter *ratelimit.Limiter
	repo           store.Repository

	rateLimitMsg string
	redirectMsg  string
	apologyMsg   string
}

// NewHandler creates a Handler with its collaborators. contactEmail is woven
// into the user-facing fallback texts so a throttled or failed request always
// leaves the visitor a direct channel.
func NewHandler(
	compiler *knowledge.Compiler,
	completer Completer,
	screener guard.Screener,
	chatLimiter, contactLimiter *ratelimit.Limiter,
	repo store.Repository,
	ownerName, contactEmail string,
) *Handler {
	return &Handler{
		compiler:       compiler,
		completer:      completer,
		screener:       screener,
		chatLimiter:    chatLimiter,
		contactLimiter: contactLimiter,
		repo:           repo,
		rateLimitMsg: fmt.Sprintf(
			"You've reached the message limit. Please try again later or email %s directly.", contactEmail),
		redirectMsg: fmt.Sprintf(
			"I'm here to discuss %s's professional portfolio and expertise. How can I help you with that?", ownerName),
		apologyMsg: fmt.Sprintf(
			"I'm having trouble responding right now. Please try again in a moment, or email %s directly.", contactEmail),
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
		r.Post("/contact", h.HandleContact)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// clientKey derives a best-effort rate-limit key for the request: the first
// forwarded-for entry, else the real-ip header, else a shared "unknown"
// bucket. Proxies can omit or spoof these headers, so this is a throttle
// key, not an identity.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return "unknown"
}
