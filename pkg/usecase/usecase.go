package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/m-mizutani/gollem"
)

const defaultModelTimeout = 2 * time.Minute

// UseCases ties the session repository, the credit data source and the
// model client together behind the HTTP surface. Construct one at process
// start and hand it to the server; there is no ambient global state.
type UseCases struct {
	repo         interfaces.SessionRepository
	creditSource interfaces.CreditSource
	llmClient    gollem.LLMClient
	modelTimeout time.Duration

	// One exclusive lock per chat serializes read-modify-write cycles of a
	// single conversation. Locks are never evicted; the map grows with the
	// number of distinct chats seen by this process, which matches the
	// lifetime of the in-memory session store.
	chatMu sync.Mutex
	chats  map[types.ChatID]*sync.Mutex
}

type Option func(*UseCases)

func WithRepository(repo interfaces.SessionRepository) Option {
	return func(u *UseCases) {
		u.repo = repo
	}
}

func WithCreditSource(src interfaces.CreditSource) Option {
	return func(u *UseCases) {
		u.creditSource = src
	}
}

func WithLLMClient(client gollem.LLMClient) Option {
	return func(u *UseCases) {
		u.llmClient = client
	}
}

func WithModelTimeout(d time.Duration) Option {
	return func(u *UseCases) {
		u.modelTimeout = d
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{
		modelTimeout: defaultModelTimeout,
		chats:        make(map[types.ChatID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// lockChat acquires the per-chat lock and returns its release func.
func (x *UseCases) lockChat(id types.ChatID) func() {
	x.chatMu.Lock()
	mu, ok := x.chats[id]
	if !ok {
		mu = &sync.Mutex{}
		x.chats[id] = mu
	}
	x.chatMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// modelContext bounds a model invocation with the configured timeout.
func (x *UseCases) modelContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, x.modelTimeout)
}
