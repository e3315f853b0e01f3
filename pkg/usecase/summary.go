package usecase

import (
	"context"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/service/llm"
	"github.com/agentic-lender/lendermemo/pkg/service/memo"
	"github.com/agentic-lender/lendermemo/pkg/utils/logging"
)

// SummaryResult is the outcome of the summary-only generation path.
type SummaryResult struct {
	HTMLSummary string
	Generated   bool
}

// GenerateSummary builds a memo preview from conversation text: the raw
// message, or the full reconstructed history when sessionID names a known
// session. Insufficient conversations get the static placeholder document.
// This path deliberately never writes back to the session; it is a stateless
// preview, unlike ChatTurn.
func (x *UseCases) GenerateSummary(ctx context.Context, sessionID types.ChatID, message string) (*SummaryResult, error) {
	conversation := message
	if sessionID != "" {
		sess, err := x.repo.Get(ctx, sessionID)
		if err == nil {
			conversation = sess.ConversationText()
		} else {
			logging.From(ctx).Warn("session not found for summary, using raw message",
				"session_id", sessionID)
		}
	}

	if !memo.HasSufficientData(conversation) {
		return &SummaryResult{HTMLSummary: memo.PlaceholderHTML, Generated: false}, nil
	}

	mctx, cancel := x.modelContext(ctx)
	defer cancel()

	html, err := llm.Generate(mctx, x.llmClient, memo.SystemMemoPrompt,
		memo.BuildMemoFromConversationPrompt(conversation))
	if err != nil {
		return nil, err
	}

	return &SummaryResult{HTMLSummary: memo.Sanitize(html), Generated: true}, nil
}
