package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"lexhub_backend/internal/ai"
	"lexhub_backend/internal/services/dto"
	"lexhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	replies []string
	err     error
	calls   []ai.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	out := s.replies[0]
	s.replies = s.replies[1:]
	return out, nil
}

func newChatService(c ai.Completer) *ChatServiceImpl {
	return &ChatServiceImpl{advisor: ai.NewAdvisor(c), now: fixedClock(testNow)}
}

func chatHistory(n int) []dto.ChatTurn {
	turns := make([]dto.ChatTurn, 0, n)
	for i := 0; i < n; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		turns = append(turns, dto.ChatTurn{Role: role, Content: "turn"})
	}
	return turns
}

func TestReply_MessageRequired(t *testing.T) {
	c := &stubCompleter{}
	svc := newChatService(c)

	_, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, apperrors.ErrMessageRequired)
	assert.Empty(t, c.calls)
}

func TestReply_NoSuggestionForShortHistory(t *testing.T) {
	c := &stubCompleter{replies: []string{"Custody depends on the child's best interests."}}
	svc := newChatService(c)

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{
		Message:             "How is custody decided?",
		Category:            "FAMILY_LAW",
		ConversationHistory: chatHistory(2),
	})
	require.NoError(t, err)

	assert.Equal(t, "Custody depends on the child's best interests.", resp.Response)
	assert.Nil(t, resp.LawyerSuggestion)
	assert.Equal(t, "2025-03-10T12:00:00Z", resp.Timestamp)

	require.Len(t, c.calls, 1)
	assert.Equal(t, ai.SystemPrompt("FAMILY_LAW"), c.calls[0].SystemPrompt)
	assert.Equal(t, ai.RoleModel, c.calls[0].History[1].Role)
}

func TestReply_SuggestionAfterFourTurns(t *testing.T) {
	c := &stubCompleter{replies: []string{"answer", "A family law attorney."}}
	svc := newChatService(c)

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{
		Message:             "What now?",
		Category:            "FAMILY_LAW",
		ConversationHistory: chatHistory(4),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.LawyerSuggestion)
	assert.Equal(t, "A family law attorney.", *resp.LawyerSuggestion)
	assert.Len(t, c.calls, 2)
}

func TestReply_NoSuggestionWithoutCategory(t *testing.T) {
	c := &stubCompleter{replies: []string{"answer"}}
	svc := newChatService(c)

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{
		Message:             "What now?",
		ConversationHistory: chatHistory(6),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.LawyerSuggestion)
	require.Len(t, c.calls, 1)
	assert.Equal(t, ai.SystemPrompt(""), c.calls[0].SystemPrompt)
}

func TestReply_EmptyModelOutput(t *testing.T) {
	svc := newChatService(&stubCompleter{})

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, ai.FallbackResponse, resp.Response)
}

func TestReply_UpstreamFailure(t *testing.T) {
	svc := newChatService(&stubCompleter{err: errors.New("401 invalid api key")})

	_, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: "hello"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Equal(t, "Failed to generate response", appErr.Message)
	assert.NotContains(t, appErr.Message, "api key")
}
