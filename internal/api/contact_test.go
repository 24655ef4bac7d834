package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postContact(t *testing.T, h *Handler, clientIP string, req ContactRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	r := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	r.Header.Set("X-Forwarded-For", clientIP)
	w := httptest.NewRecorder()
	h.HandleContact(w, r)
	return w
}

func validContact() ContactRequest {
	return ContactRequest{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Reason:  "hiring",
		Message: "I'd like to discuss a backend role.",
	}
}

func TestHandleContactSuccess(t *testing.T) {
	env := newTestEnv(30, 5)

	w := postContact(t, env.handler, "1.2.3.4", validContact())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]bool
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp["success"] {
		t.Error("success = false, want true")
	}

	if len(env.repo.saved) != 1 {
		t.Fatalf("saved = %d submissions, want 1", len(env.repo.saved))
	}
	sub := env.repo.saved[0]
	if sub.ID == "" {
		t.Error("submission ID is empty")
	}
	if sub.Name != "Jamie Doe" || sub.Email != "jamie@example.com" {
		t.Errorf("saved submission = %+v", sub)
	}
	if sub.ClientKey != "1.2.3.4" {
		t.Errorf("client key = %q, want 1.2.3.4", sub.ClientKey)
	}
}

func TestHandleContactHoneypot(t *testing.T) {
	env := newTestEnv(30, 5)

	req := validContact()
	req.Honeypot = "http://spam.example"
	w := postContact(t, env.handler, "1.2.3.4", req)

	// Bots get the same success shape as real visitors.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(env.repo.saved) != 0 {
		t.Error("honeypot submission was saved")
	}
}

func TestHandleContactMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactRequest)
	}{
		{"name", func(r *ContactRequest) { r.Name = "" }},
		{"email", func(r *ContactRequest) { r.Email = "" }},
		{"reason", func(r *ContactRequest) { r.Reason = "" }},
		{"message", func(r *ContactRequest) { r.Message = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(30, 5)
			req := validContact()
			tt.mutate(&req)

			w := postContact(t, env.handler, "1.2.3.4", req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if len(env.repo.saved) != 0 {
				t.Error("invalid submission was saved")
			}
		})
	}
}

func TestHandleContactInvalidBody(t *testing.T) {
	env := newTestEnv(30, 5)

	r := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	env.handler.HandleContact(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleContactRateLimit(t *testing.T) {
	env := newTestEnv(30, 2)

	for i := 0; i < 2; i++ {
		if w := postContact(t, env.handler, "1.2.3.4", validContact()); w.Code != http.StatusOK {
			t.Fatalf("submission %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := postContact(t, env.handler, "1.2.3.4", validContact())
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if len(env.repo.saved) != 2 {
		t.Errorf("saved = %d submissions, want 2", len(env.repo.saved))
	}
}

func TestHandleContactInvalidRequestsDontBurnQuota(t *testing.T) {
	env := newTestEnv(30, 1)

	// Repeated invalid submissions never consume the single slot.
	bad := validContact()
	bad.Email = ""
	for i := 0; i < 5; i++ {
		postContact(t, env.handler, "1.2.3.4", bad)
	}

	if w := postContact(t, env.handler, "1.2.3.4", validContact()); w.Code != http.StatusOK {
		t.Errorf("valid submission after invalid ones: status = %d, want 200", w.Code)
	}
}

func TestHandleContactSaveFailure(t *testing.T) {
	env := newTestEnv(30, 5)
	env.repo.saveErr = errors.New("disk full")

	w := postContact(t, env.handler, "1.2.3.4", validContact())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Internal server error" {
		t.Errorf("error = %q", resp["error"])
	}
}
