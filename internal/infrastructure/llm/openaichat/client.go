// Package openaichat generates advisory replies through an OpenAI-compatible
// chat completions endpoint.
package openaichat

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/ports"
	"github.com/fudosan-labs/estate-advisor/internal/infrastructure/resilience"
)

const (
	defaultMaxTokens   = 1200
	defaultTemperature = 0.7
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func New(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Generator adapts the client to the advice port. An optional resilience
// executor adds retry and circuit breaking around each completion call.
type Generator struct {
	client   *Client
	executor *resilience.Executor
}

func NewGenerator(client *Client, executor *resilience.Executor) *Generator {
	return &Generator{client: client, executor: executor}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *Generator) GenerateAdvice(ctx context.Context, input ports.AdviceInput) (string, error) {
	request := completionRequest{
		Model:       g.client.model,
		Messages:    buildMessages(input),
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	}

	var reply string
	call := func(callCtx context.Context) error {
		var response completionResponse
		if err := g.client.postJSON(callCtx, "/chat/completions", request, &response, "completion"); err != nil {
			return err
		}
		if len(response.Choices) == 0 {
			return fmt.Errorf("completion returned no choices")
		}
		reply = strings.TrimSpace(response.Choices[0].Message.Content)
		return nil
	}

	var err error
	if g.executor != nil {
		err = g.executor.Execute(ctx, "openai.completion", call, classifyCompletionError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", wrapTemporaryIfNeeded("generate advice", err)
	}
	return reply, nil
}

// buildMessages flattens the structured input into the wire format. Roles
// outside user/assistant collapse to user so the upstream contract holds.
func buildMessages(input ports.AdviceInput) []chatMessage {
	messages := make([]chatMessage, 0, len(input.History)+2)
	messages = append(messages, chatMessage{Role: "system", Content: input.SystemPrompt})
	for _, message := range input.History {
		role := "user"
		if message.Role == domain.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, chatMessage{Role: role, Content: message.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: input.UserMessage})
	return messages
}
