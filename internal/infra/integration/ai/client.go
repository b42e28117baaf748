package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/dosanjos/vendas-ia/internal/infra/http/middleware"
)

// Modelo fixo do fluxo de análise
const defaultModel = openai.ChatModelGPT4oMini

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(apiKey, baseURL string) *Client {
	options := []option.RequestOption{}
	if apiKey != "" {
		options = append(options, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)
	return &Client{client: &client, model: defaultModel}
}

// Chat envia instrução de sistema + turno do usuário e devolve o texto
// bruto da resposta. O sessionID vai no campo User para o provedor poder
// correlacionar a sessão da ligação.
func (c *Client) Chat(ctx context.Context, systemPrompt, userMessage, sessionID string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Model: c.model,
		User:  openai.String(sessionID),
	})
	if err != nil {
		middleware.RecordIntegrationError("openai")
		return "", fmt.Errorf("erro na api openai: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		middleware.RecordIntegrationError("openai")
		return "", fmt.Errorf("api openai não retornou conteúdo")
	}

	return resp.Choices[0].Message.Content, nil
}
