package repository

import (
	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/repository/localfs"
	"github.com/agentic-lender/lendermemo/pkg/repository/memory"
)

// NewMemory returns the volatile session store.
func NewMemory() interfaces.SessionRepository {
	return memory.New()
}

// NewLocalFS returns the durable one-file-per-session store rooted at dir.
func NewLocalFS(dir string) (interfaces.SessionRepository, error) {
	return localfs.New(dir)
}
