package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dosanjos/vendas-ia/internal/entity"
	"github.com/dosanjos/vendas-ia/internal/infra/http/middleware"
	"github.com/dosanjos/vendas-ia/internal/usecase"
)

type AnalysisHandler struct {
	AnalyzeUC *usecase.AnalyzeConversationUseCase
}

func NewAnalysisHandler(uc *usecase.AnalyzeConversationUseCase) *AnalysisHandler {
	return &AnalysisHandler{AnalyzeUC: uc}
}

// Handle (POST /api/analyze-conversation). Contrato: 404 só para cliente
// desconhecido; qualquer outra falha interna vira 200 degradado para não
// quebrar a UI no meio da ligação.
func (h *AnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.AnalyzeConversationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	result, err := h.AnalyzeUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, clientNotFoundDetail)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result.Degraded {
		middleware.RecordAnalysis("degraded")
	} else {
		middleware.RecordAnalysis("success")
	}

	respondJSON(w, http.StatusOK, result.Response)
}
