package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/errs"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/usecase"
)

type chatRequest struct {
	Message   string       `json:"message"`
	ChatID    types.ChatID `json:"chatId"`
	SessionID types.ChatID `json:"session_id"`
}

type chatResponse struct {
	Response         string          `json:"response"`
	HTMLSummary      string          `json:"html_summary,omitempty"`
	CreditRequestID  types.RequestID `json:"credit_request_id,omitempty"`
	SummaryGenerated bool            `json:"summary_generated"`
	ChatID           types.ChatID    `json:"chatId"`
	MessageID        types.MessageID `json:"message_id,omitempty"`
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "failed to decode request body", goerr.T(errs.TagValidation))
	}
	return nil
}

func chatHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}
		if req.Message == "" {
			handleError(w, r, goerr.New("message is required", goerr.T(errs.TagValidation)))
			return
		}

		// chatId is the historical field name; session_id is accepted as an
		// alias for callers that speak the durable-session dialect.
		chatID := req.ChatID
		if chatID == "" {
			chatID = req.SessionID
		}

		result, err := uc.ChatTurn(r.Context(), chatID, req.Message)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, chatResponse{
			Response:         result.Response,
			HTMLSummary:      result.HTMLSummary,
			CreditRequestID:  result.RequestID,
			SummaryGenerated: result.Generated,
			ChatID:           result.ChatID,
			MessageID:        result.MessageID,
		})
	}
}

type summaryRequest struct {
	Message   string       `json:"message"`
	SessionID types.ChatID `json:"session_id"`
}

func generateSummaryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summaryRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.GenerateSummary(r.Context(), req.SessionID, req.Message)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]string{
			"html_summary": result.HTMLSummary,
		})
	}
}

// memoErrorHTML is shown when the memo endpoint receives no identifier. It is
// delivered in-band with a 200 status; the front end renders html_summary
// unconditionally and only checks the error key.
const memoErrorHTML = "<div style='padding: 20px; background: #f8f9fa; border: 1px solid #dee2e6; border-radius: 8px;'><h3 style='color: #dc3545; margin: 0;'>Error</h3><p style='margin: 10px 0 0 0;'>Please provide a valid credit request ID (format: US-XXXXXX-YYYY) to generate a credit memo.</p></div>"

func generateCreditMemoHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.GenerateCreditMemo(r.Context(), req.Message)
		if errors.Is(err, usecase.ErrNoRequestID) {
			respondJSON(w, r, http.StatusOK, map[string]string{
				"error":        "No credit request ID found in message. Please provide a valid credit request ID.",
				"html_summary": memoErrorHTML,
			})
			return
		}
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"html_summary":      result.HTMLSummary,
			"credit_request_id": result.RequestID,
		})
	}
}
