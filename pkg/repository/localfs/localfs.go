package localfs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/errs"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

// LocalFS is the durable session store: one human-readable JSON document per
// session under a base directory, surviving process restart. Writes go
// through a temp file and rename so a crash mid-write cannot leave a
// truncated session behind.
type LocalFS struct {
	mu  sync.Mutex
	dir string
}

var _ interfaces.SessionRepository = &LocalFS{}

func New(dir string) (*LocalFS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create session directory",
			goerr.V("dir", dir))
	}
	return &LocalFS{dir: dir}, nil
}

func (r *LocalFS) path(id types.ChatID) string {
	// Session IDs are opaque strings from clients; strip path separators so
	// a crafted ID cannot escape the session directory.
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(id.String())
	return filepath.Join(r.dir, name+".json")
}

func (r *LocalFS) GetOrCreate(ctx context.Context, id types.ChatID) (*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, err := r.load(id)
	if err == nil {
		return sess, nil
	}
	if !goerr.HasTag(err, errs.TagNotFound) {
		return nil, err
	}

	sess = chat.NewSession(ctx, id)
	if err := r.store(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (r *LocalFS) Get(ctx context.Context, id types.ChatID) (*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(id)
}

func (r *LocalFS) Put(ctx context.Context, sess *chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store(sess)
}

func (r *LocalFS) Update(ctx context.Context, id types.ChatID, patch interfaces.SessionPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, err := r.load(id)
	if err != nil {
		if !goerr.HasTag(err, errs.TagNotFound) {
			return err
		}
		sess = chat.NewSession(ctx, id)
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

	return r.store(sess)
}

func (r *LocalFS) Delete(ctx context.Context, id types.ChatID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(id)
	if _, err := os.Stat(path); err != nil {
		return goerr.New("session not found",
			goerr.T(errs.TagNotFound),
			goerr.V("session_id", id))
	}
	if err := os.Remove(path); err != nil {
		return goerr.Wrap(err, "failed to remove session file",
			goerr.V("session_id", id))
	}
	return nil
}

func (r *LocalFS) List(ctx context.Context) ([]*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read session directory",
			goerr.V("dir", r.dir))
	}

	var sessions []*chat.Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := types.ChatID(strings.TrimSuffix(entry.Name(), ".json"))
		sess, err := r.load(id)
		if err != nil {
			// Skip unreadable documents rather than failing the listing.
			continue
		}
		sessions = append(sessions, sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	return sessions, nil
}

func (r *LocalFS) load(id types.ChatID) (*chat.Session, error) {
	raw, err := os.ReadFile(r.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.New("session not found",
				goerr.T(errs.TagNotFound),
				goerr.V("session_id", id))
		}
		return nil, goerr.Wrap(err, "failed to read session file",
			goerr.V("session_id", id))
	}

	var sess chat.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session file",
			goerr.V("session_id", id))
	}
	return &sess, nil
}

func (r *LocalFS) store(sess *chat.Session) error {
	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode session",
			goerr.V("session_id", sess.ID))
	}

	path := r.path(sess.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write session file",
			goerr.V("session_id", sess.ID))
	}
	if err := os.Rename(tmp, path); err != nil {
		return goerr.Wrap(err, "failed to replace session file",
			goerr.V("session_id", sess.ID))
	}
	return nil
}
