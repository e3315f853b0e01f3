package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/usecase"
)

func creditRequestsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := uc.ListCreditRequests(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, requests)
	}
}

func creditRequestDetailHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := types.RequestID(chi.URLParam(r, "requestID"))

		detail, err := uc.GetCreditRequestDetail(r.Context(), requestID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, detail)
	}
}
