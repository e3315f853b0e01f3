package usecase

import (
	"context"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	creditsvc "github.com/agentic-lender/lendermemo/pkg/service/credit"
	"github.com/agentic-lender/lendermemo/pkg/service/llm"
	"github.com/agentic-lender/lendermemo/pkg/service/memo"
	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
	"github.com/agentic-lender/lendermemo/pkg/utils/logging"
)

// ChatTurnResult is the outcome of one orchestrated chat turn.
type ChatTurnResult struct {
	Response    string
	ChatID      types.ChatID
	MessageID   types.MessageID
	HTMLSummary string
	RequestID   types.RequestID
	Generated   bool
}

// ChatTurn runs one conversational exchange: append the user message, scan
// it for a credit request identifier, invoke the model (twice when an
// identifier was found: a quick acknowledgment plus the memo document), and
// persist the updated session. A model failure surfaces as a request-level
// error and leaves the session at its last successful turn.
func (x *UseCases) ChatTurn(ctx context.Context, chatID types.ChatID, message string) (*ChatTurnResult, error) {
	if chatID == "" {
		chatID = types.NewChatID(ctx)
	}

	unlock := x.lockChat(chatID)
	defer unlock()

	sess, err := x.repo.GetOrCreate(ctx, chatID)
	if err != nil {
		return nil, err
	}

	sess.Append(chat.NewMessage(ctx, types.SenderUser, message))

	if requestID, ok := types.FindRequestID(message); ok {
		return x.identifiedTurn(ctx, sess, message, requestID)
	}
	return x.generalTurn(ctx, sess, message)
}

func (x *UseCases) identifiedTurn(ctx context.Context, sess *chat.Session, message string, requestID types.RequestID) (*ChatTurnResult, error) {
	logging.From(ctx).Info("credit request identifier detected",
		"chat_id", sess.ID, "request_id", requestID)

	details := creditsvc.FetchDetails(ctx, x.creditSource, requestID)

	mctx, cancel := x.modelContext(ctx)
	defer cancel()

	reply, err := llm.Generate(mctx, x.llmClient, memo.SystemChatPrompt,
		memo.BuildAckPrompt(message, requestID))
	if err != nil {
		return nil, err
	}

	html, err := llm.Generate(mctx, x.llmClient, memo.SystemMemoPrompt,
		memo.BuildMemoFromDataPrompt(details))
	if err != nil {
		return nil, err
	}
	html = memo.Sanitize(html)

	agentMsg := chat.NewMessage(ctx, types.SenderAgent, reply)
	sess.Append(agentMsg)
	sess.RetitleFromFirstExchange()

	summary := &chat.Summary{
		LastQuery:    message,
		LastResponse: reply,
		Timestamp:    clock.Now(ctx),
		HTMLSummary:  html,
		RequestID:    requestID,
		Generated:    true,
	}
	if err := x.repo.Update(ctx, sess.ID, interfaces.SessionPatch{
		Messages:  sess.Messages,
		Title:     sess.Title,
		Summary:   summary,
		RequestID: requestID,
	}); err != nil {
		return nil, err
	}

	return &ChatTurnResult{
		Response:    reply,
		ChatID:      sess.ID,
		MessageID:   agentMsg.ID,
		HTMLSummary: html,
		RequestID:   requestID,
		Generated:   true,
	}, nil
}

func (x *UseCases) generalTurn(ctx context.Context, sess *chat.Session, message string) (*ChatTurnResult, error) {
	mctx, cancel := x.modelContext(ctx)
	defer cancel()

	reply, err := llm.Generate(mctx, x.llmClient, memo.SystemChatPrompt,
		memo.BuildGeneralPrompt(message))
	if err != nil {
		return nil, err
	}

	agentMsg := chat.NewMessage(ctx, types.SenderAgent, reply)
	sess.Append(agentMsg)
	sess.RetitleFromFirstExchange()

	summary := &chat.Summary{
		LastQuery:    message,
		LastResponse: reply,
		Timestamp:    clock.Now(ctx),
		Generated:    false,
	}
	if err := x.repo.Update(ctx, sess.ID, interfaces.SessionPatch{
		Messages: sess.Messages,
		Title:    sess.Title,
		Summary:  summary,
	}); err != nil {
		return nil, err
	}

	return &ChatTurnResult{
		Response:  reply,
		ChatID:    sess.ID,
		MessageID: agentMsg.ID,
		Generated: false,
	}, nil
}
