package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	out   string
	err   error
	calls []CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.out, f.err
}

func TestSystemPrompt(t *testing.T) {
	assert.Contains(t, SystemPrompt("FAMILY_LAW"), "specializing in family law")
	assert.Contains(t, SystemPrompt("CRYPTO_COMPLIANCE"), "cryptocurrency compliance")
	assert.Equal(t, genericSystemPrompt, SystemPrompt(""))
	assert.Equal(t, genericSystemPrompt, SystemPrompt("TAX_LAW"))
}

func TestAdvisor_Respond(t *testing.T) {
	fc := &fakeCompleter{out: "Here is some guidance."}
	a := NewAdvisor(fc)

	history := []Message{{Role: RoleUser, Content: "hi"}, {Role: RoleModel, Content: "hello"}}
	out, err := a.Respond(context.Background(), "IMMIGRATION", "I need a visa", history)
	require.NoError(t, err)
	assert.Equal(t, "Here is some guidance.", out)

	require.Len(t, fc.calls, 1)
	call := fc.calls[0]
	assert.Equal(t, SystemPrompt("IMMIGRATION"), call.SystemPrompt)
	assert.Equal(t, "I need a visa", call.Prompt)
	assert.Equal(t, history, call.History)
	assert.InDelta(t, 0.7, call.Temperature, 0.0001)
	assert.Equal(t, int32(1000), call.MaxTokens)
}

func TestAdvisor_Respond_EmptyOutputFallsBack(t *testing.T) {
	a := NewAdvisor(&fakeCompleter{out: "  "})

	out, err := a.Respond(context.Background(), "", "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, FallbackResponse, out)
}

func TestAdvisor_Respond_UpstreamError(t *testing.T) {
	a := NewAdvisor(&fakeCompleter{err: errors.New("quota exceeded")})

	_, err := a.Respond(context.Background(), "", "hello", nil)
	assert.EqualError(t, err, "quota exceeded")
}

func TestAdvisor_SuggestLawyerType(t *testing.T) {
	fc := &fakeCompleter{out: "A family law attorney.\n"}
	a := NewAdvisor(fc)

	out, err := a.SuggestLawyerType(context.Background(), "FAMILY_LAW", "custody dispute")
	require.NoError(t, err)
	assert.Equal(t, "A family law attorney.", out)

	call := fc.calls[0]
	assert.Empty(t, call.SystemPrompt)
	assert.Contains(t, call.Prompt, `Based on this legal issue in FAMILY_LAW: "custody dispute"`)
	assert.InDelta(t, 0.5, call.Temperature, 0.0001)
	assert.Equal(t, int32(200), call.MaxTokens)
}

func TestAdvisor_SuggestLawyerType_Empty(t *testing.T) {
	a := NewAdvisor(&fakeCompleter{})

	out, err := a.SuggestLawyerType(context.Background(), "FAMILY_LAW", "x")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleModel, NormalizeRole("assistant"))
	assert.Equal(t, RoleModel, NormalizeRole("Model"))
	assert.Equal(t, RoleUser, NormalizeRole("user"))
	assert.Equal(t, RoleUser, NormalizeRole(""))
}

func TestToGeminiHistory(t *testing.T) {
	history := []Message{
		{Role: RoleModel, Content: "Welcome!"},
		{Role: RoleUser, Content: "first"},
		{Role: RoleUser, Content: "second"},
		{Role: RoleModel, Content: ""},
		{Role: RoleModel, Content: "answer"},
	}

	contents := toGeminiHistory(history)
	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, []genai.Part{genai.Text("first"), genai.Text("second")}, contents[0].Parts)
	assert.Equal(t, "model", contents[1].Role)
}

func TestResponseText(t *testing.T) {
	assert.Equal(t, "", responseText(nil))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("a"), genai.Text("b")}}},
		},
	}
	assert.Equal(t, "ab", responseText(resp))
}
