package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/agentic-lender/lendermemo/pkg/cli"
)

func TestServeCommandValidation(t *testing.T) {
	ctx := context.Background()
	t.Setenv("ANTHROPIC_API_KEY", "")

	t.Run("rejects unknown storage backend", func(t *testing.T) {
		err := cli.Run(ctx, []string{
			"lendermemo", "-q", "serve",
			"--storage-backend", "firestore",
		})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("Invalid storage backend")
	})

	t.Run("requires a model provider", func(t *testing.T) {
		err := cli.Run(ctx, []string{
			"lendermemo", "-q", "serve",
			"--storage-backend", "memory",
		})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("no LLM provider configured")
	})
}
