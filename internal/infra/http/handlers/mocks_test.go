package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

// MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) AppendContact(ctx context.Context, clientID string, contact entity.Contact) (*entity.Client, error) {
	args := m.Called(ctx, clientID, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entity.ConversationMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FindRecent(ctx context.Context, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error) {
	args := m.Called(ctx, clientID, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ConversationMessage), args.Error(1)
}

func (m *MockMessageRepository) FindBySession(ctx context.Context, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error) {
	args := m.Called(ctx, clientID, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ConversationMessage), args.Error(1)
}

// MockAIGateway
type MockAIGateway struct {
	mock.Mock
}

func (m *MockAIGateway) Chat(ctx context.Context, systemPrompt, userMessage, sessionID string) (string, error) {
	args := m.Called(ctx, systemPrompt, userMessage, sessionID)
	return args.String(0), args.Error(1)
}
