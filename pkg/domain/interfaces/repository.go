package interfaces

import (
	"context"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

// SessionPatch carries a partial session update. Messages always replace the
// stored sequence; Title, Summary and RequestID replace the stored values
// only when set, otherwise the prior values are preserved.
type SessionPatch struct {
	Messages  []chat.Message
	Title     string
	Summary   *chat.Summary
	RequestID types.RequestID
}

// SessionRepository is the single abstraction over both session backings:
// the process-lifetime in-memory store and the one-file-per-session durable
// store. The orchestrator never knows which one it is holding.
type SessionRepository interface {
	// GetOrCreate returns the stored session or creates and persists an
	// empty one. Idempotent for existing sessions.
	GetOrCreate(ctx context.Context, id types.ChatID) (*chat.Session, error)

	// Get returns the stored session, or an error tagged not_found.
	Get(ctx context.Context, id types.ChatID) (*chat.Session, error)

	// Put stores a session wholesale, overwriting any prior record.
	Put(ctx context.Context, sess *chat.Session) error

	// Update applies a partial update and bumps the session's updated_at.
	Update(ctx context.Context, id types.ChatID, patch SessionPatch) error

	// Delete removes the session, or returns an error tagged not_found.
	Delete(ctx context.Context, id types.ChatID) error

	// List returns all sessions ordered by updated_at descending.
	List(ctx context.Context) ([]*chat.Session, error)
}
