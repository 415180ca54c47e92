package services

import (
	"context"
	"strings"
	"time"

	"lexhub_backend/internal/ai"
	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/services/dto"
	"lexhub_backend/pkg/apperrors"
)

// подсказку о типе юриста даем, когда в истории набралось хотя бы столько реплик
const suggestionHistoryThreshold = 4

// LegalAdvisor - то, что чату нужно от языковой модели (реализует *ai.Advisor)
type LegalAdvisor interface {
	Respond(ctx context.Context, category, message string, history []ai.Message) (string, error)
	SuggestLawyerType(ctx context.Context, category, issue string) (string, error)
}

type ChatService interface {
	Reply(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type ChatServiceImpl struct {
	advisor LegalAdvisor
	timeout time.Duration
	now     func() time.Time
}

func NewChatService(advisor LegalAdvisor, timeout time.Duration) ChatService {
	return &ChatServiceImpl{
		advisor: advisor,
		timeout: timeout,
		now:     time.Now,
	}
}

// Reply - один ход диалога. Состояние диалога хранит клиент.
func (s *ChatServiceImpl) Reply(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.ErrMessageRequired
	}
	category := strings.TrimSpace(req.Category)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	history := make([]ai.Message, 0, len(req.ConversationHistory))
	for _, turn := range req.ConversationHistory {
		history = append(history, ai.Message{Role: ai.NormalizeRole(turn.Role), Content: turn.Content})
	}

	response, err := s.advisor.Respond(ctx, category, message, history)
	if err != nil {
		logger.CtxWithError(ctx, "Chat completion failed", err, "category", category)
		return nil, apperrors.ErrChatUpstream(err)
	}

	var suggestion *string
	if category != "" && len(req.ConversationHistory) >= suggestionHistoryThreshold {
		text, err := s.advisor.SuggestLawyerType(ctx, category, message)
		if err != nil {
			logger.CtxWithError(ctx, "Lawyer suggestion failed", err, "category", category)
			return nil, apperrors.ErrChatUpstream(err)
		}
		suggestion = &text
	}

	return &dto.ChatResponse{
		Response:         response,
		LawyerSuggestion: suggestion,
		Timestamp:        s.now().UTC().Format(time.RFC3339),
	}, nil
}
