package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/repository"
)

// Storage selects the session store backing. The localfs backend keeps one
// JSON file per session under sessions-dir; memory keeps nothing across
// restarts.
type Storage struct {
	backend     string
	sessionsDir string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-backend",
			Usage:       "Session store backend [memory|localfs]",
			Category:    "Storage",
			Value:       "localfs",
			Destination: &x.backend,
			Sources:     cli.EnvVars("LENDERMEMO_STORAGE_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "sessions-dir",
			Usage:       "Directory for session files (localfs backend)",
			Category:    "Storage",
			Value:       "sessions",
			Destination: &x.sessionsDir,
			Sources:     cli.EnvVars("LENDERMEMO_SESSIONS_DIR"),
		},
	}
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("sessions_dir", x.sessionsDir),
	)
}

func (x *Storage) Configure() (interfaces.SessionRepository, error) {
	switch x.backend {
	case "memory":
		return repository.NewMemory(), nil
	case "localfs":
		return repository.NewLocalFS(x.sessionsDir)
	default:
		return nil, goerr.New("Invalid storage backend", goerr.V("backend", x.backend))
	}
}
