package handlers

import "net/http"

// Root (GET /api/) — mensagem de identificação do sistema
func Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Sistema IA Vendas - Dos Anjos Engenharia",
	})
}
