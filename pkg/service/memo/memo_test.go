package memo_test

import (
	"strings"
	"testing"

	"github.com/agentic-lender/lendermemo/pkg/service/memo"
	"github.com/m-mizutani/gt"
)

func TestHasSufficientData(t *testing.T) {
	manyWords := strings.Repeat("word ", 60)

	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "short text with keyword",
			input: "tell me about the borrower income",
			want:  false,
		},
		{
			name:  "long text without keywords",
			input: strings.Repeat("weather ", 60),
			want:  false,
		},
		{
			name:  "long text with keyword",
			input: manyWords + "the borrower earns well",
			want:  true,
		},
		{
			name:  "keyword match is case-insensitive",
			input: manyWords + "COLLATERAL is strong",
			want:  true,
		},
		{
			name:  "exactly fifty words is insufficient",
			input: strings.Repeat("loan ", 50),
			want:  false,
		},
		{
			name:  "empty input",
			input: "",
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, memo.HasSufficientData(tc.input), tc.want)
		})
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean output untouched",
			input: "<div>memo</div>",
			want:  "<div>memo</div>",
		},
		{
			name:  "html fence stripped",
			input: "```html\n<div>memo</div>\n```",
			want:  "<div>memo</div>",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n<div>memo</div>\n  ",
			want:  "<div>memo</div>",
		},
		{
			name:  "interior fences preserved",
			input: "<div>use ``` for code</div>",
			want:  "<div>use ``` for code</div>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, memo.Sanitize(tc.input), tc.want)
		})
	}
}

func TestPrompts(t *testing.T) {
	t.Run("ack prompt embeds message and identifier", func(t *testing.T) {
		p := memo.BuildAckPrompt("Tell me about US-123456-7890", "US-123456-7890")
		gt.S(t, p).
			Contains("Tell me about US-123456-7890").
			Contains("Credit request for US-123456-7890")
	})

	t.Run("memo prompt embeds rendered details", func(t *testing.T) {
		p := memo.BuildMemoFromDataPrompt("CREDIT REQUEST DETAILS FOR US-123456-7890:")
		gt.S(t, p).
			Contains("CREDIT REQUEST DETAILS FOR US-123456-7890:").
			Contains("EXECUTIVE SUMMARY")
	})

	t.Run("conversation prompt embeds conversation", func(t *testing.T) {
		p := memo.BuildMemoFromConversationPrompt("user: the borrower earns 85k")
		gt.S(t, p).Contains("user: the borrower earns 85k")
	})

	t.Run("direct prompt names the identifier", func(t *testing.T) {
		p := memo.BuildMemoDirectPrompt("US-123456-7890", "details here")
		gt.S(t, p).
			Contains("for credit request US-123456-7890").
			Contains("details here")
	})
}

func TestPlaceholder(t *testing.T) {
	gt.S(t, memo.PlaceholderHTML).Contains("<div")
	gt.True(t, strings.HasPrefix(strings.TrimSpace(memo.PlaceholderHTML), "<div"))
}
