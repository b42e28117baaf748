package usecase

import (
	"fmt"
	"strings"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

const salesSystemPrompt = `Você é um assistente de IA especializado em vendas técnicas para a empresa DOS ANJOS ENGENHARIA.

OBJETIVO PRINCIPAL: Marcar reunião de apresentação técnica

NOSSOS SERVIÇOS:
- Acompanhamento Técnico de Obras
- Gerenciamento de Projetos
- Projetos de Engenharia
- Regularizações (AVCB, SPDA)
- Laudos e Vistorias Técnicas
- Levantamentos com Drone
- Engenharia de Segurança
- Consultoria Especializada

CONTEXTO DO CLIENTE:
%s

%s

Analise a fala do cliente e forneça:
1. Sugestões práticas para resposta (máximo 3)
2. Análise do sentimento e interesse
3. Próximos passos estratégicos
4. Status do fluxo da ligação

Responda sempre em português brasileiro, sendo prático e focado em MARCAR A REUNIÃO.`

// BuildSystemPrompt monta a instrução de sistema: catálogo fixo + perfil
// do cliente + contatos + excerto recente em ordem cronológica.
func BuildSystemPrompt(client *entity.Client, history []entity.ConversationMessage) string {
	var profile strings.Builder
	fmt.Fprintf(&profile, "\nEMPRESA: %s\n", client.CompanyName)
	fmt.Fprintf(&profile, "ÁREA: %s\n", client.BusinessArea)
	fmt.Fprintf(&profile, "PORTE: %s\n", client.CompanySize)
	fmt.Fprintf(&profile, "LOCALIZAÇÃO: %s\n", client.Location)
	profile.WriteString("\nCONTATOS:\n")
	for _, contact := range client.Contacts {
		fmt.Fprintf(&profile, "- %s (%s) - %s\n", contact.Name, contact.Role, strings.ToUpper(contact.ContactType))
	}

	var excerpt strings.Builder
	if len(history) > 0 {
		excerpt.WriteString("\nCONVERSA ANTERIOR:\n")
		for _, msg := range history {
			fmt.Fprintf(&excerpt, "[%s] %s\n", msg.MessageType, msg.Content)
		}
	}

	return fmt.Sprintf(salesSystemPrompt, profile.String(), excerpt.String())
}

// BuildUserMessage embala a fala transcrita no turno de usuário.
func BuildUserMessage(speechText string) string {
	return fmt.Sprintf("FALA DO CLIENTE: '%s'\n\nForneça análise completa e sugestões para continuar a conversa visando marcar reunião técnica.", speechText)
}
