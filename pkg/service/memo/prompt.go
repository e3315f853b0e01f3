package memo

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

//go:embed prompt/system_chat.md
var SystemChatPrompt string

//go:embed prompt/system_memo.md
var SystemMemoPrompt string

//go:embed prompt/insufficient_data.html
var PlaceholderHTML string

//go:embed prompt/ack.md
var ackPromptTemplate string

//go:embed prompt/general.md
var generalPromptTemplate string

//go:embed prompt/memo_from_data.md
var memoFromDataTemplate string

//go:embed prompt/memo_from_conversation.md
var memoFromConversationTemplate string

//go:embed prompt/memo_direct.md
var memoDirectTemplate string

var (
	ackPrompt            = template.Must(template.New("ack").Parse(ackPromptTemplate))
	generalPrompt        = template.Must(template.New("general").Parse(generalPromptTemplate))
	memoFromData         = template.Must(template.New("memo_from_data").Parse(memoFromDataTemplate))
	memoFromConversation = template.Must(template.New("memo_from_conversation").Parse(memoFromConversationTemplate))
	memoDirect           = template.Must(template.New("memo_direct").Parse(memoDirectTemplate))
)

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are embedded constants; execution can only fail on a
		// programming error.
		panic(err)
	}
	return buf.String()
}

// BuildAckPrompt asks for a quick acknowledgment of a recognized credit
// request identifier.
func BuildAckPrompt(message string, id types.RequestID) string {
	return render(ackPrompt, map[string]any{
		"Message":   message,
		"RequestID": id,
	})
}

// BuildGeneralPrompt wraps a chat message that carried no identifier.
func BuildGeneralPrompt(message string) string {
	return render(generalPrompt, map[string]any{
		"Message": message,
	})
}

// BuildMemoFromDataPrompt asks for a full memo from rendered credit request
// details (chat-turn path).
func BuildMemoFromDataPrompt(creditDetails string) string {
	return render(memoFromData, map[string]any{
		"CreditDetails": creditDetails,
	})
}

// BuildMemoFromConversationPrompt asks for a full memo from conversation
// text (summary-only path).
func BuildMemoFromConversationPrompt(conversation string) string {
	return render(memoFromConversation, map[string]any{
		"Conversation": conversation,
	})
}

// BuildMemoDirectPrompt asks for a full memo for one identifier (dedicated
// memo endpoint).
func BuildMemoDirectPrompt(id types.RequestID, creditDetails string) string {
	return render(memoDirect, map[string]any{
		"RequestID":     id,
		"CreditDetails": creditDetails,
	})
}
