package usecase

import (
	"context"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/credit"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

// GetChatHistory returns one session's full contents, or a not_found error.
func (x *UseCases) GetChatHistory(ctx context.Context, chatID types.ChatID) (*chat.Session, error) {
	return x.repo.Get(ctx, chatID)
}

// CreateSession explicitly creates an empty session with a fresh UUID.
func (x *UseCases) CreateSession(ctx context.Context) (*chat.Session, error) {
	sess := chat.NewSession(ctx, types.NewSessionID())
	if err := x.repo.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ListSessions returns listing rows for all sessions, most recently updated
// first.
func (x *UseCases) ListSessions(ctx context.Context) ([]chat.ListEntry, error) {
	sessions, err := x.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]chat.ListEntry, 0, len(sessions))
	for _, sess := range sessions {
		entries = append(entries, sess.ToListEntry())
	}
	return entries, nil
}

// DeleteSession removes one session, or returns a not_found error.
func (x *UseCases) DeleteSession(ctx context.Context, chatID types.ChatID) error {
	return x.repo.Delete(ctx, chatID)
}

// ListCreditRequests proxies the credit data source listing.
func (x *UseCases) ListCreditRequests(ctx context.Context) ([]credit.Request, error) {
	return x.creditSource.ListRequests(ctx)
}

// GetCreditRequestDetail proxies one record lookup from the data source.
func (x *UseCases) GetCreditRequestDetail(ctx context.Context, id types.RequestID) (*credit.Detail, error) {
	return x.creditSource.GetDetail(ctx, id)
}
