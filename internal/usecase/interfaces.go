package usecase

import (
	"context"

	"github.com/dosanjos/vendas-ia/internal/entity"
	"github.com/dosanjos/vendas-ia/internal/infra/queue"
)

type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Client) error
	FindAll(ctx context.Context) ([]entity.Client, error)
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	AppendContact(ctx context.Context, clientID string, contact entity.Contact) (*entity.Client, error)
}

type MessageRepositoryInterface interface {
	Create(ctx context.Context, m *entity.ConversationMessage) error
	FindRecent(ctx context.Context, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error)
	FindBySession(ctx context.Context, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error)
}

// AIGateway é o colaborador externo de chat completion. O sessionID vai
// junto para o provedor poder manter contexto por sessão, mas o prompt já
// carrega o próprio excerto recente — não dependemos disso.
type AIGateway interface {
	Chat(ctx context.Context, systemPrompt, userMessage, sessionID string) (string, error)
}

type QueueProducerInterface interface {
	PublishAnalysis(ctx context.Context, payload queue.AnalysisEventPayload) error
}

type EmailService interface {
	SendNewClientAlert(to, companyName, contactName string) error
}
