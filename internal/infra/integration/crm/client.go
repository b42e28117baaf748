package crm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dosanjos/vendas-ia/internal/infra/http/middleware"
)

type Client struct {
	webhookURL string
	apiToken   string
	http       *http.Client
}

func NewClient(webhookURL, apiToken string) *Client {
	return &Client{
		webhookURL: webhookURL,
		apiToken:   apiToken,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// UpdateLeadTemperature empurra o score de sentimento da última análise
// pro CRM. Chamado pelo worker da fila, nunca no caminho da requisição.
func (c *Client) UpdateLeadTemperature(input UpdateLeadInput) error {
	if c.webhookURL == "" {
		log.Println("⚠️ CRM: WEBHOOK_URL não configurado")
		return fmt.Errorf("crm não configurado")
	}

	payload := updateLeadRequest{
		ExternalID:     input.ClientID,
		CompanyName:    input.CompanyName,
		SessionID:      input.SessionID,
		SentimentScore: input.SentimentScore,
		Degraded:       input.Degraded,
		Source:         "vendas-ia",
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal lead: %w", err)
	}

	req, err := http.NewRequest("POST", c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("crm")
		return fmt.Errorf("erro request crm: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		middleware.RecordIntegrationError("crm")
		log.Printf("❌ ERRO ATUALIZAR LEAD CRM (Status %d): %s", resp.StatusCode, string(body))
		return fmt.Errorf("crm rejeitou atualização (status %d)", resp.StatusCode)
	}

	var response updateLeadResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		// Corpo vazio ou não-JSON em 2xx não é erro: o webhook pode não responder nada
		return nil
	}

	if response.Error != nil {
		middleware.RecordIntegrationError("crm")
		return fmt.Errorf("crm: %s", response.Error.Message)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "VendasIA/1.0")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
}
