package chat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/utils/clock"
	"github.com/m-mizutani/gt"
)

func TestSessionAppendOrder(t *testing.T) {
	ctx := context.Background()
	sess := chat.NewSession(ctx, "chat_1")

	sess.Append(chat.NewMessage(ctx, types.SenderUser, "first"))
	sess.Append(chat.NewMessage(ctx, types.SenderAgent, "second"))
	sess.Append(chat.NewMessage(ctx, types.SenderUser, "third"))

	gt.A(t, sess.Messages).Length(3)
	gt.Equal(t, sess.Messages[0].Text, "first")
	gt.Equal(t, sess.Messages[1].Text, "second")
	gt.Equal(t, sess.Messages[2].Text, "third")
}

func TestRetitleFromFirstExchange(t *testing.T) {
	t.Run("short message kept as-is", func(t *testing.T) {
		ctx := context.Background()
		sess := chat.NewSession(ctx, "chat_1")
		sess.Append(chat.NewMessage(ctx, types.SenderUser, "hello there"))
		sess.Append(chat.NewMessage(ctx, types.SenderAgent, "hi"))
		sess.RetitleFromFirstExchange()
		gt.Equal(t, sess.Title, "hello there")
	})

	t.Run("long message truncated", func(t *testing.T) {
		ctx := context.Background()
		long := strings.Repeat("a", 80)
		sess := chat.NewSession(ctx, "chat_1")
		sess.Append(chat.NewMessage(ctx, types.SenderUser, long))
		sess.Append(chat.NewMessage(ctx, types.SenderAgent, "hi"))
		sess.RetitleFromFirstExchange()
		gt.Equal(t, sess.Title, strings.Repeat("a", 50)+"...")
	})

	t.Run("not the first exchange", func(t *testing.T) {
		ctx := context.Background()
		sess := chat.NewSession(ctx, "chat_1")
		sess.Append(chat.NewMessage(ctx, types.SenderUser, "one"))
		sess.RetitleFromFirstExchange()
		gt.Equal(t, sess.Title, chat.DefaultTitle)
	})
}

func TestConversationText(t *testing.T) {
	ctx := clock.With(context.Background(), func() time.Time {
		return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	})
	sess := chat.NewSession(ctx, "chat_1")
	sess.Append(chat.NewMessage(ctx, types.SenderUser, "show me the loan"))
	sess.Append(chat.NewMessage(ctx, types.SenderAgent, "here it is"))

	gt.Equal(t, sess.ConversationText(), "user: show me the loan\nagent: here it is")
}

func TestToListEntry(t *testing.T) {
	ctx := context.Background()
	sess := chat.NewSession(ctx, "chat_1")
	sess.Append(chat.NewMessage(ctx, types.SenderUser, "hello"))

	entry := sess.ToListEntry()
	gt.Equal(t, entry.ID, types.ChatID("chat_1"))
	gt.Equal(t, entry.MessageCount, 1)
	gt.Equal(t, entry.Status, types.SessionStatusActive)
}
