package ai

import (
	"context"
	"strings"
)

const (
	respondTemperature = 0.7
	respondMaxTokens   = 1000

	suggestTemperature = 0.5
	suggestMaxTokens   = 200
)

// Advisor - юридический чат поверх Completer. Состояния не хранит.
type Advisor struct {
	completer Completer
}

func NewAdvisor(completer Completer) *Advisor {
	return &Advisor{completer: completer}
}

// Respond отвечает на сообщение с учетом категории и истории.
// Пустой ответ модели заменяется на FallbackResponse.
func (a *Advisor) Respond(ctx context.Context, category, message string, history []Message) (string, error) {
	out, err := a.completer.Complete(ctx, CompletionRequest{
		SystemPrompt: SystemPrompt(category),
		History:      history,
		Prompt:       message,
		Temperature:  respondTemperature,
		MaxTokens:    respondMaxTokens,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return FallbackResponse, nil
	}
	return out, nil
}

// SuggestLawyerType - 2-3 предложения о том, какой юрист нужен. Может вернуть "".
func (a *Advisor) SuggestLawyerType(ctx context.Context, category, issue string) (string, error) {
	out, err := a.completer.Complete(ctx, CompletionRequest{
		Prompt:      suggestionPrompt(category, issue),
		Temperature: suggestTemperature,
		MaxTokens:   suggestMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
