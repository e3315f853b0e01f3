package chat

import (
	"context"
	"strings"
	"time"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
)

const (
	DefaultTitle  = "New Credit Memo Conversation"
	titleMaxRunes = 50
)

// Session is one conversation's server-side record: its ordered messages,
// the last generated summary artifact and the last selected credit request
// identifier. It is owned exclusively by the session repository.
type Session struct {
	ID        types.ChatID        `json:"session_id"`
	Title     string              `json:"title"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Messages  []Message           `json:"messages"`
	Status    types.SessionStatus `json:"status"`

	Summary   *Summary        `json:"summary,omitempty"`
	RequestID types.RequestID `json:"selected_request_id,omitempty"`
}

// NewSession creates an empty active session.
func NewSession(ctx context.Context, id types.ChatID) *Session {
	now := clock.Now(ctx)
	return &Session{
		ID:        id,
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []Message{},
		Status:    types.SessionStatusActive,
	}
}

// Clone returns a deep copy. Repositories hand out clones so callers cannot
// mutate stored state behind the store's back.
func (s *Session) Clone() *Session {
	copied := *s
	copied.Messages = append([]Message(nil), s.Messages...)
	if s.Summary != nil {
		sum := *s.Summary
		copied.Summary = &sum
	}
	return &copied
}

// Append adds a message to the end of the conversation. Message order is
// insertion order and is never rearranged.
func (s *Session) Append(msg Message) {
	s.Messages = append(s.Messages, msg)
}

// RetitleFromFirstExchange sets the session title from the first user
// message once the first user/agent exchange is complete.
func (s *Session) RetitleFromFirstExchange() {
	if len(s.Messages) != 2 {
		return
	}
	s.Title = TruncateTitle(s.Messages[0].Text)
}

// TruncateTitle shortens free text to a session title.
func TruncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxRunes {
		return text
	}
	return string(runes[:titleMaxRunes]) + "..."
}

// ConversationText flattens the message history into "sender: text" lines
// for prompt construction.
func (s *Session) ConversationText() string {
	lines := make([]string, 0, len(s.Messages))
	for _, msg := range s.Messages {
		lines = append(lines, msg.Sender.String()+": "+msg.Text)
	}
	return strings.Join(lines, "\n")
}

// ListEntry is the summary row returned by session listing.
type ListEntry struct {
	ID           types.ChatID        `json:"session_id"`
	Title        string              `json:"title"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Status       types.SessionStatus `json:"status"`
	MessageCount int                 `json:"message_count"`
}

// ToListEntry projects the session into its listing row.
func (s *Session) ToListEntry() ListEntry {
	return ListEntry{
		ID:           s.ID,
		Title:        s.Title,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Status:       s.Status,
		MessageCount: len(s.Messages),
	}
}
