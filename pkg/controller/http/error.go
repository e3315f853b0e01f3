package http

import (
	"encoding/json"
	"net/http"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/errs"
	"github.com/agentic-lender/lendermemo/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)

	case goerr.HasTag(err, errs.TagValidation):
		logger.Warn("Bad Request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

	case goerr.HasTag(err, errs.TagExternal), goerr.HasTag(err, errs.TagLLMError):
		logger.Error("Upstream Failure", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)

	case goerr.HasTag(err, errs.TagTimeout):
		logger.Error("Gateway Timeout", "error", err)
		http.Error(w, err.Error(), http.StatusGatewayTimeout)

	default:
		logger.Error("Internal Server Error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already written; just record the failure.
		logging.From(r.Context()).Error("failed to encode response", "error", err)
	}
}
