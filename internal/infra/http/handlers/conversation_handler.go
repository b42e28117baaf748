package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dosanjos/vendas-ia/internal/usecase"
)

const historyLimit = 100

type ConversationHandler struct {
	Repo usecase.MessageRepositoryInterface
}

func NewConversationHandler(repo usecase.MessageRepositoryInterface) *ConversationHandler {
	return &ConversationHandler{Repo: repo}
}

// HandleHistory (GET /api/conversations/{clientID}/{sessionID}) devolve o
// transcript em ordem cronológica, até 100 mensagens.
func (h *ConversationHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.Repo.FindBySession(r.Context(), clientID, sessionID, historyLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao buscar conversa")
		return
	}

	respondJSON(w, http.StatusOK, messages)
}
