package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/mock"
	"github.com/m-mizutani/gt"

	server "github.com/agentic-lender/lendermemo/pkg/controller/http"
	"github.com/agentic-lender/lendermemo/pkg/repository"
	creditsvc "github.com/agentic-lender/lendermemo/pkg/service/credit"
	"github.com/agentic-lender/lendermemo/pkg/service/memo"
	"github.com/agentic-lender/lendermemo/pkg/usecase"
)

// scriptedLLM returns the queued responses in order.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
}

func (s *scriptedLLM) client() gollem.LLMClient {
	return &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, opts ...gollem.SessionOption) (gollem.Session, error) {
			return &mock.SessionMock{
				GenerateContentFunc: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					s.mu.Lock()
					defer s.mu.Unlock()

					if len(s.responses) == 0 {
						return &gollem.Response{Texts: []string{"ok"}}, nil
					}
					next := s.responses[0]
					s.responses = s.responses[1:]
					return &gollem.Response{Texts: []string{next}}, nil
				},
			}, nil
		},
	}
}

func newServer(llm *scriptedLLM) *server.Server {
	uc := usecase.New(
		usecase.WithRepository(repository.NewMemory()),
		usecase.WithCreditSource(creditsvc.NewSampleSource()),
		usecase.WithLLMClient(llm.client()),
	)
	return server.New(uc)
}

func postJSON(t *testing.T, srv *server.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw := gt.R1(json.Marshal(body)).NoError(t)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func getPath(srv *server.Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	gt.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRoot(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	rec := getPath(srv, "/")
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]string](t, rec)
	gt.Equal(t, body["message"], "Lender Memo API is running")
}

func TestChatWithIdentifier(t *testing.T) {
	srv := newServer(&scriptedLLM{responses: []string{
		"Got it, check the summary section.",
		"```html\n<div>memo for US-123456-7890</div>\n```",
	}})

	rec := postJSON(t, srv, "/chat", map[string]string{
		"message": "Tell me about US-123456-7890",
	})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]any](t, rec)
	gt.Equal(t, body["credit_request_id"], "US-123456-7890")
	gt.Equal(t, body["summary_generated"], true)
	gt.S(t, body["response"].(string)).Contains("summary section")

	html := body["html_summary"].(string)
	gt.True(t, strings.HasPrefix(html, "<div"))

	chatID := body["chatId"].(string)
	gt.S(t, chatID).Contains("chat_")

	// The turn must be visible through history.
	hist := getPath(srv, "/chat-history/"+chatID)
	gt.Equal(t, hist.Code, http.StatusOK)

	histBody := decode[map[string]any](t, hist)
	gt.Equal[any](t, histBody["chatId"], chatID)
	gt.A(t, histBody["messages"].([]any)).Length(2)
	gt.Equal(t, histBody["selectedRequestId"], "US-123456-7890")
}

func TestChatWithoutIdentifier(t *testing.T) {
	srv := newServer(&scriptedLLM{responses: []string{
		"Sure, what loan are you asking about?",
	}})

	rec := postJSON(t, srv, "/chat", map[string]string{
		"message": "hello there",
	})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]any](t, rec)
	gt.Equal(t, body["summary_generated"], false)
	if _, ok := body["html_summary"]; ok {
		t.Error("html_summary should be omitted for general turns")
	}
}

func TestChatRequiresMessage(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	rec := postJSON(t, srv, "/chat", map[string]string{})
	gt.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestChatHistoryUnknown(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	rec := getPath(srv, "/chat-history/chat_000_0000")
	gt.Equal(t, rec.Code, http.StatusNotFound)
}

func TestGenerateSummaryInsufficient(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	rec := postJSON(t, srv, "/generate-summary", map[string]string{
		"message": "short message with fewer than fifty words in it total",
	})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]string](t, rec)
	gt.Equal(t, body["html_summary"], memo.PlaceholderHTML)
}

func TestGenerateSummarySufficient(t *testing.T) {
	srv := newServer(&scriptedLLM{responses: []string{
		"<div>full memo</div>",
	}})

	words := make([]string, 60)
	for i := range words {
		words[i] = "word"
	}
	msg := strings.Join(words, " ") + " borrower"

	rec := postJSON(t, srv, "/generate-summary", map[string]string{"message": msg})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]string](t, rec)
	gt.Equal(t, body["html_summary"], "<div>full memo</div>")
}

func TestGenerateCreditMemoWithoutID(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	rec := postJSON(t, srv, "/generate-credit-memo", map[string]string{
		"message": "make me a memo",
	})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]string](t, rec)
	gt.S(t, body["error"]).Contains("No credit request ID found")
	gt.S(t, body["html_summary"]).Contains("provide a valid credit request ID")
}

func TestGenerateCreditMemo(t *testing.T) {
	srv := newServer(&scriptedLLM{responses: []string{
		"```html\n<div>direct memo</div>\n```",
	}})

	rec := postJSON(t, srv, "/generate-credit-memo", map[string]string{
		"message": "memo for US-222333-4444 please",
	})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decode[map[string]string](t, rec)
	gt.Equal(t, body["credit_request_id"], "US-222333-4444")
	gt.Equal(t, body["html_summary"], "<div>direct memo</div>")
}

func TestCreditRequests(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	rec := getPath(srv, "/credit-requests")
	gt.Equal(t, rec.Code, http.StatusOK)

	list := decode[[]map[string]any](t, rec)
	gt.Number(t, len(list)).Greater(0)

	id := list[0]["request_id"].(string)
	detail := getPath(srv, "/credit-requests/"+id)
	gt.Equal(t, detail.Code, http.StatusOK)

	detailBody := decode[map[string]any](t, detail)
	gt.Equal[any](t, detailBody["request_id"], id)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	created := postJSON(t, srv, "/sessions", map[string]string{})
	gt.Equal(t, created.Code, http.StatusOK)

	createdBody := decode[map[string]any](t, created)
	sessionID := createdBody["session_id"].(string)
	gt.S(t, sessionID).Contains("-") // durable sessions use UUIDs

	listed := getPath(srv, "/sessions")
	gt.Equal(t, listed.Code, http.StatusOK)
	listedBody := decode[map[string]any](t, listed)
	gt.A(t, listedBody["sessions"].([]any)).Length(1)

	fetched := getPath(srv, "/sessions/"+sessionID)
	gt.Equal(t, fetched.Code, http.StatusOK)
	fetchedBody := decode[map[string]any](t, fetched)
	gt.Equal[any](t, fetchedBody["session_id"], sessionID)

	req := httptest.NewRequest(http.MethodDelete, "/sessions/"+sessionID, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusOK)

	gone := getPath(srv, "/sessions/"+sessionID)
	gt.Equal(t, gone.Code, http.StatusNotFound)

	req = httptest.NewRequest(http.MethodDelete, "/sessions/"+sessionID, nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusNotFound)
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(&scriptedLLM{})

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusNoContent)
	gt.Equal(t, rec.Header().Get("Access-Control-Allow-Origin"), "http://localhost:3000")
}
