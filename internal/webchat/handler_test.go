package webchat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushiksr22/advisor-voice-agent/internal/dialogue"
)

func newTestHandler() *Handler {
	return NewHandler(dialogue.NewEngine(dialogue.Config{}), nil)
}

func postMessage(t *testing.T, h *Handler, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webchat/message", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleMessage(rec, req)
	return rec
}

func TestHandleMessageRepliesViaEngine(t *testing.T) {
	h := newTestHandler()

	rec := postMessage(t, h, map[string]string{"session_id": "s1", "text": "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp["session_id"])
	assert.Contains(t, resp["reply_text"], "Advisor Appointment Scheduler")
}

func TestHandleMessageGeneratesSessionID(t *testing.T) {
	h := newTestHandler()

	rec := postMessage(t, h, map[string]string{"text": "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["session_id"])
}

func TestHandleMessageRequiresText(t *testing.T) {
	h := newTestHandler()

	rec := postMessage(t, h, map[string]string{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessageKeepsSessionState(t *testing.T) {
	h := newTestHandler()

	postMessage(t, h, map[string]string{"session_id": "s1", "text": "hello"})
	rec := postMessage(t, h, map[string]string{"session_id": "s1", "text": "book a KYC appointment"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply_text"], "What day works best for you?")
}
