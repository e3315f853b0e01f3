package chat

import (
	"context"
	"time"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
)

// Message is one entry in a conversation. Immutable once appended.
type Message struct {
	ID        types.MessageID `json:"id"`
	Text      string          `json:"text"`
	Sender    types.Sender    `json:"sender"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a message stamped with the context clock.
func NewMessage(ctx context.Context, sender types.Sender, text string) Message {
	return Message{
		ID:        types.NewMessageID(ctx),
		Text:      text,
		Sender:    sender,
		Timestamp: clock.Now(ctx),
	}
}
