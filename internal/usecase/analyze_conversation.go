package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dosanjos/vendas-ia/internal/entity"
	"github.com/dosanjos/vendas-ia/internal/infra/queue"
)

const (
	recentMessagesLimit = 5
	aiCallTimeout       = 20 * time.Second
)

// AnalyzeConversationUseCase transforma uma fala transcrita em transcript
// persistido + payload de coaching. Falhas internas (banco, colaborador)
// viram resposta degradada; só cliente inexistente sobe como erro.
type AnalyzeConversationUseCase struct {
	ClientRepo  ClientRepositoryInterface
	MessageRepo MessageRepositoryInterface
	AI          AIGateway
	Queue       QueueProducerInterface
}

func NewAnalyzeConversationUseCase(
	clientRepo ClientRepositoryInterface,
	messageRepo MessageRepositoryInterface,
	ai AIGateway,
	queueProducer QueueProducerInterface,
) *AnalyzeConversationUseCase {
	return &AnalyzeConversationUseCase{
		ClientRepo:  clientRepo,
		MessageRepo: messageRepo,
		AI:          ai,
		Queue:       queueProducer,
	}
}

func (uc *AnalyzeConversationUseCase) Execute(ctx context.Context, input AnalyzeConversationInput) (*AnalysisResult, error) {
	client, response, err := uc.run(ctx, input)

	result := &AnalysisResult{Response: response}
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrClientNotFound):
		return nil, err
	default:
		log.Printf("❌ Erro na análise: %v", err)
		result.Degraded = true
		result.Reason = err.Error()
		result.Response = degradedResponse(err)
	}

	uc.publishEvent(ctx, input, client, result)

	return result, nil
}

func (uc *AnalyzeConversationUseCase) run(ctx context.Context, input AnalyzeConversationInput) (*entity.Client, *AIResponse, error) {
	// 1. Cliente precisa existir antes de qualquer escrita no transcript
	client, err := uc.ClientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, nil, err
	}

	// 2. Últimas 5 mensagens, revertidas para ordem cronológica
	recent, err := uc.MessageRepo.FindRecent(ctx, input.ClientID, input.SessionID, recentMessagesLimit)
	if err != nil {
		return client, nil, fmt.Errorf("erro ao buscar contexto da conversa: %w", err)
	}
	reverseMessages(recent)

	// 3-4. Prompt fixo + chamada ao colaborador, com timeout explícito
	systemPrompt := BuildSystemPrompt(client, recent)
	userMessage := BuildUserMessage(input.SpeechText)

	aiCtx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	reply, err := uc.AI.Chat(aiCtx, systemPrompt, userMessage, input.SessionID)
	if err != nil {
		return client, nil, fmt.Errorf("colaborador de IA falhou: %w", err)
	}

	// 5. Persiste fala e resposta. As duas escritas não são atômicas
	// entre si; o transcript é advisory, não autoritativo.
	speech := entity.NewConversationMessage(input.ClientID, input.SessionID, entity.MessageTypeClientSpeech, input.SpeechText)
	if err := uc.MessageRepo.Create(ctx, speech); err != nil {
		return client, nil, fmt.Errorf("erro ao persistir fala do cliente: %w", err)
	}

	suggestion := entity.NewConversationMessage(input.ClientID, input.SessionID, entity.MessageTypeAISuggestion, reply)
	if err := uc.MessageRepo.Create(ctx, suggestion); err != nil {
		return client, nil, fmt.Errorf("erro ao persistir resposta da IA: %w", err)
	}

	// 6. Anotações locais sobre o texto bruto
	return client, &AIResponse{
		Suggestions:    ExtractSuggestions(reply),
		Analysis:       SummarizeAnalysis(reply),
		NextSteps:      NextSteps(),
		SentimentScore: SentimentScore(input.SpeechText),
		CallFlowStatus: CallFlowInProgress,
	}, nil
}

func degradedResponse(err error) *AIResponse {
	return &AIResponse{
		Suggestions:    []string{"Erro na análise - Continue naturalmente"},
		Analysis:       fmt.Sprintf("Erro no processamento: %s", err.Error()),
		NextSteps:      append([]string(nil), degradedNextSteps...),
		SentimentScore: sentimentDegraded,
		CallFlowStatus: CallFlowError,
	}
}

// publishEvent alimenta o fanout de observabilidade/CRM. Best-effort:
// falha aqui nunca muda a resposta HTTP.
func (uc *AnalyzeConversationUseCase) publishEvent(ctx context.Context, input AnalyzeConversationInput, client *entity.Client, result *AnalysisResult) {
	if uc.Queue == nil {
		return
	}

	payload := queue.AnalysisEventPayload{
		ClientID:       input.ClientID,
		SessionID:      input.SessionID,
		SentimentScore: result.Response.SentimentScore,
		Degraded:       result.Degraded,
		Reason:         result.Reason,
	}
	if client != nil {
		payload.CompanyName = client.CompanyName
	}

	if err := uc.Queue.PublishAnalysis(ctx, payload); err != nil {
		log.Printf("⚠️ Falha ao publicar evento de análise: %v", err)
	}
}

func reverseMessages(msgs []entity.ConversationMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
