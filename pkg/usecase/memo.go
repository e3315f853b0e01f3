package usecase

import (
	"context"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	creditsvc "github.com/agentic-lender/lendermemo/pkg/service/credit"
	"github.com/agentic-lender/lendermemo/pkg/service/llm"
	"github.com/agentic-lender/lendermemo/pkg/service/memo"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNoRequestID reports that the message carried no credit request
// identifier. The memo endpoint translates it into an in-band error payload
// rather than an HTTP error status; that response shape is a front-end
// contract.
var ErrNoRequestID = goerr.New("no credit request ID found in message")

// MemoResult is the outcome of identifier-gated direct memo generation.
type MemoResult struct {
	HTMLSummary string
	RequestID   types.RequestID
}

// GenerateCreditMemo extracts an identifier from the message, fetches its
// credit record and generates the memo document. The session store is not
// involved in this path.
func (x *UseCases) GenerateCreditMemo(ctx context.Context, message string) (*MemoResult, error) {
	requestID, ok := types.FindRequestID(message)
	if !ok {
		return nil, goerr.Wrap(ErrNoRequestID, "message did not contain an identifier")
	}

	details := creditsvc.FetchDetails(ctx, x.creditSource, requestID)

	mctx, cancel := x.modelContext(ctx)
	defer cancel()

	html, err := llm.Generate(mctx, x.llmClient, memo.SystemMemoPrompt,
		memo.BuildMemoDirectPrompt(requestID, details))
	if err != nil {
		return nil, err
	}

	return &MemoResult{
		HTMLSummary: memo.Sanitize(html),
		RequestID:   requestID,
	}, nil
}
