package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AnalysisEventPayload é o evento emitido após cada análise de conversa,
// inclusive as degradadas (Degraded=true carrega o motivo).
type AnalysisEventPayload struct {
	ClientID       string `json:"client_id"`
	SessionID      string `json:"session_id"`
	CompanyName    string `json:"company_name"`
	SentimentScore int    `json:"sentiment_score"`
	Degraded       bool   `json:"degraded"`
	Reason         string `json:"reason,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishAnalysis(ctx context.Context, payload AnalysisEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
