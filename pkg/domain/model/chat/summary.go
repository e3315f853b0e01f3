package chat

import (
	"time"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

// Summary is the artifact of the last generation attempt for a conversation.
// It is replaced wholesale on every update, never merged field by field.
// Generated reports whether a full memo was produced, as opposed to a
// conversational turn that skipped memo generation.
type Summary struct {
	LastQuery    string          `json:"lastQuery"`
	LastResponse string          `json:"lastResponse"`
	Timestamp    time.Time       `json:"timestamp"`
	HTMLSummary  string          `json:"htmlSummary,omitempty"`
	RequestID    types.RequestID `json:"creditRequestId,omitempty"`
	Generated    bool            `json:"summaryGenerated"`
}
