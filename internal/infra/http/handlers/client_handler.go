package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dosanjos/vendas-ia/internal/entity"
	"github.com/dosanjos/vendas-ia/internal/usecase"
)

const clientNotFoundDetail = "Cliente não encontrado"

type ClientHandler struct {
	CreateClientUC *usecase.CreateClientUseCase
	AddContactUC   *usecase.AddContactUseCase
	Repo           usecase.ClientRepositoryInterface
}

func NewClientHandler(createUC *usecase.CreateClientUseCase, addContactUC *usecase.AddContactUseCase, repo usecase.ClientRepositoryInterface) *ClientHandler {
	return &ClientHandler{
		CreateClientUC: createUC,
		AddContactUC:   addContactUC,
		Repo:           repo,
	}
}

// HandleCreate (POST /api/clients)
func (h *ClientHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	client, err := h.CreateClientUC.Execute(r.Context(), input)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// HandleList (GET /api/clients) — limitado a 1000 pelo repositório
func (h *ClientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.FindAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao listar clientes")
		return
	}

	respondJSON(w, http.StatusOK, clients)
}

// HandleGet (GET /api/clients/{id})
func (h *ClientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	client, err := h.Repo.FindByID(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, clientNotFoundDetail)
			return
		}
		respondError(w, http.StatusInternalServerError, "Erro ao buscar cliente")
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// HandleAddContact (POST /api/clients/{id}/contacts)
func (h *ClientHandler) HandleAddContact(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	var input usecase.AddContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	client, err := h.AddContactUC.Execute(r.Context(), clientID, input)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrClientNotFound):
		respondError(w, http.StatusNotFound, clientNotFoundDetail)
	case usecase.IsDomainError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
