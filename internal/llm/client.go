package llm

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message одно сообщение chat-completion запроса.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request описывает один вызов модели.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float32
}

// Client минимальный публичный интерфейс LLM клиента.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
