package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/manthanmittal/portfolio-server/internal/chat"
)

// Message is a rendered conversation entry.
type Message struct {
	ID        string
	Role      chat.Role
	Content   string
	Timestamp time.Time
}

// Conversation holds the message log for one chat session. It is safe for
// concurrent use. A new send supersedes any in-flight one: the older request
// is cancelled and its outcome, whatever it turns out to be, is discarded.
type Conversation struct {
	mu        sync.Mutex
	api       *API
	welcome   string
	welcomeID string
	messages  []Message
	typing    bool
	lastErr   string
	gen       uint64
	cancel    context.CancelFunc
}

// NewConversation creates a conversation seeded with a welcome message.
// The welcome is display-only and never forwarded as history.
func NewConversation(api *API, welcome string) *Conversation {
	c := &Conversation{api: api, welcome: welcome}
	c.reset()
	return c
}

// reset replaces the log with a fresh welcome message. Caller holds mu,
// except during construction.
func (c *Conversation) reset() {
	id := uuid.NewString()
	c.welcomeID = id
	c.messages = []Message{{
		ID:        id,
		Role:      chat.RoleAssistant,
		Content:   c.welcome,
		Timestamp: time.Now(),
	}}
	c.typing = false
	c.lastErr = ""
}

// SendMessage appends the user's message and requests a reply in the
// background. The returned channel closes when this send resolves; a
// whitespace-only message is a no-op and returns nil. Sending again before
// resolution cancels the earlier request.
func (c *Conversation) SendMessage(text string) <-chan struct{} {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	gen := c.gen

	c.messages = append(c.messages, Message{
		ID:        uuid.NewString(),
		Role:      chat.RoleUser,
		Content:   trimmed,
		Timestamp: time.Now(),
	})
	c.typing = true
	c.lastErr = ""
	history := c.historyLocked()
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		reply, err := c.api.SendChat(ctx, trimmed, history)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			// Superseded; the newer send owns the typing state.
			return
		}
		c.typing = false
		c.cancel = nil

		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.lastErr = err.Error()
			c.messages = append(c.messages, Message{
				ID:        uuid.NewString(),
				Role:      chat.RoleAssistant,
				Content:   "⚠️ " + err.Error(),
				Timestamp: time.Now(),
			})
			return
		}

		c.messages = append(c.messages, Message{
			ID:        uuid.NewString(),
			Role:      chat.RoleAssistant,
			Content:   reply,
			Timestamp: time.Now(),
		})
	}()
	return done
}

// historyLocked builds the wire history: every message except the welcome
// and the just-appended user message, which travels in the message field.
func (c *Conversation) historyLocked() []chat.Message {
	history := make([]chat.Message, 0, len(c.messages))
	for _, m := range c.messages[:len(c.messages)-1] {
		if m.ID == c.welcomeID {
			continue
		}
		history = append(history, chat.Message{Role: m.Role, Content: m.Content})
	}
	return history
}

// Clear cancels any in-flight request and replaces the log with a fresh
// welcome message.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.reset()
}

// Messages returns a snapshot of the conversation log.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Typing reports whether a reply is pending.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

// Err returns the user-facing text of the last failed send, or "".
func (c *Conversation) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
