// Package chat defines the wire types shared by the chat endpoint, the
// completion gateway, and the client conversation store.
package chat

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleUser marks a visitor-authored turn.
	RoleUser Role = "user"
	// RoleAssistant marks an assistant-authored turn.
	RoleAssistant Role = "assistant"
	// RoleSystem marks the system prompt turn sent to the provider.
	RoleSystem Role = "system"
)

// Message is a single role/content turn as it travels over the wire.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is the body of POST /api/chat.
type Request struct {
	Message string    `json:"message"`
	History []Message `json:"history,omitempty"`
}

// Response is the body returned by POST /api/chat. Exactly one of Message
// or Error is set: success responses carry Message, failure responses carry
// Error with a non-200 status.
type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
