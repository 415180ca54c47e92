package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_Reply(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat", "", map[string]interface{}{
		"message":  "My landlord kept my deposit",
		"category": "HOUSING_LANDLORD",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, ts.Completer.Reply, got["response"])
	assert.Nil(t, got["lawyerSuggestion"], "подсказка только после 4 реплик истории")
	assert.NotEmpty(t, got["timestamp"])
}

func TestChat_MessageRequired(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat", "", map[string]interface{}{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Message is required")
}
