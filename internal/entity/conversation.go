package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de mensagem do transcript
const (
	MessageTypeClientSpeech = "client_speech"
	MessageTypeAISuggestion = "ai_suggestion"
	MessageTypeAnalysis     = "analysis"
)

// Entidade: ConversationMessage (log append-only por cliente/sessão)
type ConversationMessage struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	SessionID   string    `json:"session_id"`
	MessageType string    `json:"message_type"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewConversationMessage(clientID, sessionID, messageType, content string) *ConversationMessage {
	return &ConversationMessage{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		SessionID:   sessionID,
		MessageType: messageType,
		Content:     content,
		Timestamp:   time.Now().UTC(),
	}
}
