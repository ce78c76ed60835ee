package ports

import "context"

// ChatService is a stateless pass-through to the chat-completion API.
type ChatService interface {
	Ask(ctx context.Context, question, model string) (string, error)
}
