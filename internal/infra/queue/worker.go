package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dosanjos/vendas-ia/internal/infra/integration/crm"
)

// CRMSyncClient define o contrato do destino dos eventos de análise
type CRMSyncClient interface {
	UpdateLeadTemperature(input crm.UpdateLeadInput) error
}

type Worker struct {
	Channel   *amqp.Channel
	CRMClient CRMSyncClient
}

func NewWorker(ch *amqp.Channel, crmClient CRMSyncClient) *Worker {
	return &Worker{
		Channel:   ch,
		CRMClient: crmClient,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload AnalysisEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem malformada. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Evento de análise: cliente=%s sessão=%s score=%d", payload.ClientID, payload.SessionID, payload.SentimentScore)

			if err := w.ProcessEvent(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao sincronizar com CRM: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

// ProcessEvent empurra a temperatura do lead pro CRM. Sem CRM configurado
// o evento é só descartado com Ack.
func (w *Worker) ProcessEvent(payload AnalysisEventPayload) error {
	if w.CRMClient == nil {
		log.Println("⚠️ [WORKER] CRM não configurado, evento ignorado")
		return nil
	}

	return w.CRMClient.UpdateLeadTemperature(crm.UpdateLeadInput{
		ClientID:       payload.ClientID,
		CompanyName:    payload.CompanyName,
		SessionID:      payload.SessionID,
		SentimentScore: payload.SentimentScore,
		Degraded:       payload.Degraded,
	})
}
