package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/manthanmittal/portfolio-server/internal/domain"
)

// ContactRequest is the body of POST /api/contact. Honeypot is a hidden form
// field real visitors never fill in.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
}

// HandleContact handles POST /api/contact requests.
//
// A non-empty honeypot gets a faux success so bots learn nothing. The
// rate-limit slot is consumed only after validation passes, so malformed
// requests don't burn quota.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Honeypot != "" {
		slog.Info("Contact honeypot triggered", "client_key", clientKey(r))
		JSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	if req.Name == "" || req.Email == "" || req.Reason == "" || req.Message == "" {
		Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	key := clientKey(r)
	if h.contactLimiter.AtLimit(key) {
		Error(w, http.StatusTooManyRequests, "Too many submissions. Please try again later.")
		return
	}

	sub := &domain.Submission{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Reason:    req.Reason,
		Message:   req.Message,
		ClientKey: key,
		CreatedAt: time.Now(),
	}
	if err := h.repo.SaveSubmission(r.Context(), sub); err != nil {
		slog.Error("Failed to save contact submission", "error", err)
		Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.contactLimiter.Record(key)

	slog.Info("Contact form submission",
		"submission_id", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"reason", sub.Reason,
	)

	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
