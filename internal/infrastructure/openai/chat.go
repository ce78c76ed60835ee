// Package openai wraps the chat-completion API behind the ChatService
// port. The proxy is stateless: each question becomes a single-message
// completion request.
package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// allowedModels is the set of models the chat endpoint may request.
var allowedModels = map[string]struct{}{
	openai.GPT3Dot5Turbo: {},
	openai.GPT4:          {},
}

// AllowedModel reports whether model may be used through the proxy.
func AllowedModel(model string) bool {
	_, ok := allowedModels[model]
	return ok
}

type ChatService struct {
	client *openai.Client
}

func NewChatService(apiKey string) *ChatService {
	return &ChatService{client: openai.NewClient(apiKey)}
}

// Ask forwards the question and concatenates the returned choice
// contents into a single answer string.
func (s *ChatService) Ask(ctx context.Context, question, model string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	var b strings.Builder
	for _, choice := range resp.Choices {
		b.WriteString(choice.Message.Content)
	}
	return b.String(), nil
}
