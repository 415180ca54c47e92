package ai

import (
	"context"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message - одна реплика диалога
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest - один вызов модели: системный промпт, история и новое сообщение
type CompletionRequest struct {
	SystemPrompt string
	History      []Message
	Prompt       string
	Temperature  float32
	MaxTokens    int32
}

// Completer - провайдер языковой модели. Пустая строка - валидный ответ.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// NormalizeRole приводит роль клиента к user/model ("assistant" -> model)
func NormalizeRole(role string) Role {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "assistant", "model":
		return RoleModel
	default:
		return RoleUser
	}
}
