package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dosanjos/vendas-ia/internal/entity"
	"github.com/dosanjos/vendas-ia/internal/infra/queue"
)

func analysisClient() *entity.Client {
	return &entity.Client{
		ID:           "client-1",
		CompanyName:  "Acme",
		BusinessArea: "industrial",
		CompanySize:  "media",
		Location:     "SP",
		Contacts: []entity.Contact{
			{ID: "c-1", Name: "Joao", Role: "Manager", Phone: "111", ContactType: "decisor"},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func analysisInput() AnalyzeConversationInput {
	return AnalyzeConversationInput{
		ClientID:   "client-1",
		SessionID:  "sess-1",
		SpeechText: "achei interessante, preciso de um laudo",
	}
}

func TestAnalyzeConversationSuccess(t *testing.T) {
	mockClientRepo := new(MockClientRepository)
	mockMessageRepo := new(MockMessageRepository)
	mockAI := new(MockAIGateway)
	mockQueue := new(MockQueueProducer)

	mockClientRepo.On("FindByID", mock.Anything, "client-1").Return(analysisClient(), nil)
	mockMessageRepo.On("FindRecent", mock.Anything, "client-1", "sess-1", 5).
		Return([]entity.ConversationMessage{}, nil)

	reply := "Sugestão: pergunte sobre o prazo da regularização"
	mockAI.On("Chat", mock.Anything, mock.Anything, mock.Anything, "sess-1").Return(reply, nil)

	mockMessageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.ConversationMessage) bool {
		return m.MessageType == entity.MessageTypeClientSpeech && m.Content == "achei interessante, preciso de um laudo"
	})).Return(nil).Once()
	mockMessageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.ConversationMessage) bool {
		return m.MessageType == entity.MessageTypeAISuggestion && m.Content == reply
	})).Return(nil).Once()

	mockQueue.On("PublishAnalysis", mock.Anything, mock.MatchedBy(func(p queue.AnalysisEventPayload) bool {
		return p.ClientID == "client-1" && !p.Degraded && p.CompanyName == "Acme"
	})).Return(nil)

	uc := NewAnalyzeConversationUseCase(mockClientRepo, mockMessageRepo, mockAI, mockQueue)

	result, err := uc.Execute(context.Background(), analysisInput())

	assert.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Equal(t, CallFlowInProgress, result.Response.CallFlowStatus)
	assert.Equal(t, reply, result.Response.Analysis)
	assert.Equal(t, []string{reply}, result.Response.Suggestions)
	assert.Equal(t, []string{"Continuar explorando necessidades", "Agendar reunião técnica"}, result.Response.NextSteps)
	// "interessante" +10, "preciso" +10
	assert.Equal(t, 85, result.Response.SentimentScore)

	mockMessageRepo.AssertNumberOfCalls(t, "Create", 2)
	mockQueue.AssertExpectations(t)
}

func TestAnalyzeConversationPromptIncluiContexto(t *testing.T) {
	mockClientRepo := new(MockClientRepository)
	mockMessageRepo := new(MockMessageRepository)
	mockAI := new(MockAIGateway)

	mockClientRepo.On("FindByID", mock.Anything, "client-1").Return(analysisClient(), nil)

	// FindRecent devolve mais-recente-primeiro; o prompt precisa da ordem cronológica
	recent := []entity.ConversationMessage{
		{MessageType: entity.MessageTypeAISuggestion, Content: "segunda"},
		{MessageType: entity.MessageTypeClientSpeech, Content: "primeira"},
	}
	mockMessageRepo.On("FindRecent", mock.Anything, "client-1", "sess-1", 5).Return(recent, nil)

	var capturedSystem, capturedUser string
	mockAI.On("Chat", mock.Anything, mock.Anything, mock.Anything, "sess-1").
		Run(func(args mock.Arguments) {
			capturedSystem = args.String(1)
			capturedUser = args.String(2)
		}).
		Return("ok, diga que a visita é sem custo", nil)

	mockMessageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewAnalyzeConversationUseCase(mockClientRepo, mockMessageRepo, mockAI, nil)

	_, err := uc.Execute(context.Background(), analysisInput())
	assert.NoError(t, err)

	assert.Contains(t, capturedSystem, "EMPRESA: Acme")
	assert.Contains(t, capturedSystem, "- Joao (Manager) - DECISOR")
	assert.Contains(t, capturedSystem, "CONVERSA ANTERIOR:")
	assert.Less(t,
		strings.Index(capturedSystem, "primeira"),
		strings.Index(capturedSystem, "segunda"),
		"excerto deve estar em ordem cronológica",
	)
	assert.Contains(t, capturedUser, "FALA DO CLIENTE: 'achei interessante, preciso de um laudo'")
}

func TestAnalyzeConversationClientNotFound(t *testing.T) {
	mockClientRepo := new(MockClientRepository)
	mockMessageRepo := new(MockMessageRepository)
	mockAI := new(MockAIGateway)

	mockClientRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrClientNotFound)

	uc := NewAnalyzeConversationUseCase(mockClientRepo, mockMessageRepo, mockAI, nil)

	input := analysisInput()
	input.ClientID = "ghost"
	result, err := uc.Execute(context.Background(), input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrClientNotFound)
	// nada pode ser escrito no transcript
	mockMessageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockAI.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeConversationColaboradorFalhou(t *testing.T) {
	mockClientRepo := new(MockClientRepository)
	mockMessageRepo := new(MockMessageRepository)
	mockAI := new(MockAIGateway)
	mockQueue := new(MockQueueProducer)

	mockClientRepo.On("FindByID", mock.Anything, "client-1").Return(analysisClient(), nil)
	mockMessageRepo.On("FindRecent", mock.Anything, "client-1", "sess-1", 5).
		Return([]entity.ConversationMessage{}, nil)
	mockAI.On("Chat", mock.Anything, mock.Anything, mock.Anything, "sess-1").
		Return("", errors.New("timeout"))
	mockQueue.On("PublishAnalysis", mock.Anything, mock.MatchedBy(func(p queue.AnalysisEventPayload) bool {
		return p.Degraded && p.Reason != ""
	})).Return(nil)

	uc := NewAnalyzeConversationUseCase(mockClientRepo, mockMessageRepo, mockAI, mockQueue)

	result, err := uc.Execute(context.Background(), analysisInput())

	assert.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, 50, result.Response.SentimentScore)
	assert.Equal(t, CallFlowError, result.Response.CallFlowStatus)
	assert.Equal(t, []string{"Erro na análise - Continue naturalmente"}, result.Response.Suggestions)
	assert.Equal(t, []string{"Reagendar análise"}, result.Response.NextSteps)
	assert.Contains(t, result.Response.Analysis, "Erro no processamento:")

	mockMessageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockQueue.AssertExpectations(t)
}

func TestAnalyzeConversationStorageFailureDegrada(t *testing.T) {
	mockClientRepo := new(MockClientRepository)
	mockMessageRepo := new(MockMessageRepository)
	mockAI := new(MockAIGateway)

	mockClientRepo.On("FindByID", mock.Anything, "client-1").Return(analysisClient(), nil)
	mockMessageRepo.On("FindRecent", mock.Anything, "client-1", "sess-1", 5).
		Return([]entity.ConversationMessage{}, nil)
	mockAI.On("Chat", mock.Anything, mock.Anything, mock.Anything, "sess-1").Return("tudo certo, diga que retorna amanhã", nil)
	mockMessageRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := NewAnalyzeConversationUseCase(mockClientRepo, mockMessageRepo, mockAI, nil)

	result, err := uc.Execute(context.Background(), analysisInput())

	assert.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, 50, result.Response.SentimentScore)
}

func TestAnalyzeConversationPublishFailureNaoDegrada(t *testing.T) {
	mockClientRepo := new(MockClientRepository)
	mockMessageRepo := new(MockMessageRepository)
	mockAI := new(MockAIGateway)
	mockQueue := new(MockQueueProducer)

	mockClientRepo.On("FindByID", mock.Anything, "client-1").Return(analysisClient(), nil)
	mockMessageRepo.On("FindRecent", mock.Anything, "client-1", "sess-1", 5).
		Return([]entity.ConversationMessage{}, nil)
	mockAI.On("Chat", mock.Anything, mock.Anything, mock.Anything, "sess-1").Return("diga que a proposta sai essa semana", nil)
	mockMessageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishAnalysis", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewAnalyzeConversationUseCase(mockClientRepo, mockMessageRepo, mockAI, mockQueue)

	result, err := uc.Execute(context.Background(), analysisInput())

	assert.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Equal(t, CallFlowInProgress, result.Response.CallFlowStatus)
}
