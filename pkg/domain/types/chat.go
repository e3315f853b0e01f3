package types

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
	"github.com/google/uuid"
)

// ChatID identifies one conversation. IDs generated for ad-hoc chats use the
// timestamp+random suffix scheme the front end already relies on; durable
// sessions created explicitly use UUIDs.
type ChatID string

func NewChatID(ctx context.Context) ChatID {
	return ChatID(fmt.Sprintf("chat_%d_%04d", clock.Now(ctx).Unix(), rand.Intn(9000)+1000))
}

func NewSessionID() ChatID {
	return ChatID(uuid.New().String())
}

func (x ChatID) String() string {
	return string(x)
}

// MessageID identifies one message within a conversation. Collision avoidance
// is practical, not cryptographic.
type MessageID string

func NewMessageID(ctx context.Context) MessageID {
	return MessageID(fmt.Sprintf("msg_%d_%04d", clock.Now(ctx).Unix(), rand.Intn(9000)+1000))
}

func (x MessageID) String() string {
	return string(x)
}

// Sender is a closed two-value enumeration of message authors.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

func (x Sender) String() string {
	return string(x)
}

func (x Sender) Validate() error {
	switch x {
	case SenderUser, SenderAgent:
		return nil
	}
	return fmt.Errorf("invalid sender: %s", x)
}

// SessionStatus represents the lifecycle state of a conversation session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
)

func (x SessionStatus) String() string {
	return string(x)
}
