package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agentic-lender/lendermemo/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)
	r.Use(corsMiddleware)

	r.Get("/", rootHandler)
	r.Get("/chat-history/{chatID}", chatHistoryHandler(uc))
	r.Get("/credit-requests", creditRequestsHandler(uc))
	r.Get("/credit-requests/{requestID}", creditRequestDetailHandler(uc))
	r.Post("/chat", chatHandler(uc))
	r.Post("/generate-summary", generateSummaryHandler(uc))
	r.Post("/generate-credit-memo", generateCreditMemoHandler(uc))

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", createSessionHandler(uc))
		r.Get("/", listSessionsHandler(uc))
		r.Get("/{sessionID}", getSessionHandler(uc))
		r.Delete("/{sessionID}", deleteSessionHandler(uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{
		"message": "Lender Memo API is running",
	})
}
