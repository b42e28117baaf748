package database

import (
	"context"
	"database/sql"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.ConversationMessage) error {
	query := `
		INSERT INTO conversation_messages (id, client_id, session_id, message_type, content, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID,
		m.ClientID,
		m.SessionID,
		m.MessageType,
		m.Content,
		m.Timestamp,
	)

	return err
}

// FindRecent devolve as últimas mensagens da sessão, mais recente
// primeiro. Usado para montar o contexto do prompt.
func (r *MessageRepository) FindRecent(ctx context.Context, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error) {
	query := `
		SELECT id, client_id, session_id, message_type, content, "timestamp"
		FROM conversation_messages
		WHERE client_id = $1 AND session_id = $2
		ORDER BY "timestamp" DESC, seq DESC
		LIMIT $3
	`

	return r.queryMessages(ctx, query, clientID, sessionID, limit)
}

// FindBySession devolve o transcript em ordem cronológica. Empate de
// timestamp resolve por ordem de inserção (seq).
func (r *MessageRepository) FindBySession(ctx context.Context, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error) {
	query := `
		SELECT id, client_id, session_id, message_type, content, "timestamp"
		FROM conversation_messages
		WHERE client_id = $1 AND session_id = $2
		ORDER BY "timestamp" ASC, seq ASC
		LIMIT $3
	`

	return r.queryMessages(ctx, query, clientID, sessionID, limit)
}

func (r *MessageRepository) queryMessages(ctx context.Context, query, clientID, sessionID string, limit int) ([]entity.ConversationMessage, error) {
	rows, err := r.DB.QueryContext(ctx, query, clientID, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entity.ConversationMessage{}
	for rows.Next() {
		var m entity.ConversationMessage
		err := rows.Scan(&m.ID, &m.ClientID, &m.SessionID, &m.MessageType, &m.Content, &m.Timestamp)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
