package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/chat"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/usecase"
)

type chatHistoryResponse struct {
	ChatID            types.ChatID    `json:"chatId"`
	Messages          []chat.Message  `json:"messages"`
	SummaryData       *chat.Summary   `json:"summaryData"`
	SelectedRequestID types.RequestID `json:"selectedRequestId"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func chatHistoryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID := types.ChatID(chi.URLParam(r, "chatID"))

		sess, err := uc.GetChatHistory(r.Context(), chatID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, chatHistoryResponse{
			ChatID:            sess.ID,
			Messages:          sess.Messages,
			SummaryData:       sess.Summary,
			SelectedRequestID: sess.RequestID,
			CreatedAt:         sess.CreatedAt,
			UpdatedAt:         sess.UpdatedAt,
		})
	}
}

func createSessionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := uc.CreateSession(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"session_id": sess.ID,
			"created_at": sess.CreatedAt,
		})
	}
}

func listSessionsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := uc.ListSessions(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"sessions": entries,
		})
	}
}

func getSessionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := types.ChatID(chi.URLParam(r, "sessionID"))

		sess, err := uc.GetChatHistory(r.Context(), sessionID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, sess)
	}
}

func deleteSessionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := types.ChatID(chi.URLParam(r, "sessionID"))

		if err := uc.DeleteSession(r.Context(), sessionID); err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]string{
			"message": "Session deleted successfully",
		})
	}
}
