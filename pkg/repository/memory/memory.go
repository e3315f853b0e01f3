package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/errs"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

// Memory is the process-lifetime session store. Contents are lost on
// restart. All methods hand out deep copies to prevent external
// modification of stored state.
type Memory struct {
	mu       sync.RWMutex
	sessions map[types.ChatID]*chat.Session
}

var _ interfaces.SessionRepository = &Memory{}

func New() *Memory {
	return &Memory{
		sessions: make(map[types.ChatID]*chat.Session),
	}
}

func (r *Memory) GetOrCreate(ctx context.Context, id types.ChatID) (*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[id]; ok {
		return sess.Clone(), nil
	}

	sess := chat.NewSession(ctx, id)
	r.sessions[id] = sess.Clone()
	return sess, nil
}

func (r *Memory) Get(ctx context.Context, id types.ChatID) (*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, goerr.New("session not found",
			goerr.T(errs.TagNotFound),
			goerr.V("session_id", id))
	}
	return sess.Clone(), nil
}

func (r *Memory) Put(ctx context.Context, sess *chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sess.ID] = sess.Clone()
	return nil
}

func (r *Memory) Update(ctx context.Context, id types.ChatID, patch interfaces.SessionPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		sess = chat.NewSession(ctx, id)
		r.sessions[id] = sess
	}

	sess.Messages = append([]chat.Message(nil), patch.Messages...)
	if patch.Title != "" {
		sess.Title = patch.Title
	}
	if patch.Summary != nil {
		sum := *patch.Summary
		sess.Summary = &sum
	}
	if patch.RequestID != "" {
		sess.RequestID = patch.RequestID
	}
	sess.UpdatedAt = clock.Now(ctx)

	return nil
}

func (r *Memory) Delete(ctx context.Context, id types.ChatID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return goerr.New("session not found",
			goerr.T(errs.TagNotFound),
			goerr.V("session_id", id))
	}
	delete(r.sessions, id)
	return nil
}

func (r *Memory) List(ctx context.Context) ([]*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*chat.Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		sessions = append(sessions, sess.Clone())
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	return sessions, nil
}
