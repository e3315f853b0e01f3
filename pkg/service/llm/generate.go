package llm

import (
	"context"
	"errors"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Generate performs one text-in/text-out model invocation. The model is an
// opaque collaborator: no retries here, a failure propagates to the caller
// as a request-level error. Callers bound the call with a context deadline.
func Generate(ctx context.Context, client gollem.LLMClient, systemPrompt, prompt string) (string, error) {
	opts := []gollem.SessionOption{}
	if systemPrompt != "" {
		opts = append(opts, gollem.WithSessionSystemPrompt(systemPrompt))
	}

	ssn, err := client.NewSession(ctx, opts...)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create model session",
			goerr.T(errs.TagLLMError))
	}

	resp, err := ssn.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", goerr.Wrap(err, "model invocation timed out",
				goerr.T(errs.TagTimeout))
		}
		return "", goerr.Wrap(err, "model invocation failed",
			goerr.T(errs.TagLLMError))
	}

	if len(resp.Texts) == 0 || resp.Texts[0] == "" {
		return "", goerr.New("model returned no text content",
			goerr.T(errs.TagLLMError))
	}
	return resp.Texts[0], nil
}
