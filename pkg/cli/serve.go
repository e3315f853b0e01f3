package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/agentic-lender/lendermemo/pkg/cli/config"
	server "github.com/agentic-lender/lendermemo/pkg/controller/http"
	"github.com/agentic-lender/lendermemo/pkg/usecase"
	"github.com/agentic-lender/lendermemo/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var (
		addr         string
		modelTimeout time.Duration
		llmCfg       config.LLMCfg
		storageCfg   config.Storage
		creditCfg    config.Credit
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("LENDERMEMO_ADDR"),
				Usage:       "Listen address",
				Value:       "127.0.0.1:8000",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "model-timeout",
				Sources:     cli.EnvVars("LENDERMEMO_MODEL_TIMEOUT"),
				Usage:       "Timeout for a single model invocation",
				Value:       2 * time.Minute,
				Destination: &modelTimeout,
			},
		},
		llmCfg.Flags(),
		storageCfg.Flags(),
		creditCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"llm", llmCfg,
				"storage", storageCfg,
				"credit", creditCfg,
			)

			repo, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithCreditSource(creditCfg.Configure()),
				usecase.WithLLMClient(llmClient),
				usecase.WithModelTimeout(modelTimeout),
			)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				logging.From(ctx).Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}
