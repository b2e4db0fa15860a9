package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushiksr22/advisor-voice-agent/internal/booking"
	"github.com/kaushiksr22/advisor-voice-agent/internal/dialogue"
	"github.com/kaushiksr22/advisor-voice-agent/internal/handoff"
	"github.com/kaushiksr22/advisor-voice-agent/internal/http/handlers"
	"github.com/kaushiksr22/advisor-voice-agent/internal/webchat"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	engine := dialogue.NewEngine(dialogue.Config{})
	svc := handoff.NewService(handoff.Config{Store: booking.NewMemoryStore()})

	return New(&Config{
		TurnHandler:          handlers.NewTurnHandler(handlers.TurnHandlerConfig{Engine: engine}),
		SecureDetailsHandler: handlers.NewSecureDetailsHandler(svc, nil),
		WebchatHandler:       webchat.NewHandler(engine, nil),
		MetricsHandler:       promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{}),
		CORSAllowedOrigins:   []string{"http://localhost:5173"},
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTextTurnRoute(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]string{"text": "hello"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/text-turn", bytes.NewReader(body))
	req.Header.Set("X-Session-Id", "router-test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reply_text")
}

func TestSecureDetailsRoute(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]string{
		"booking_code": "NL-ZZZZ",
		"email":        "caller@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/secure-details", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebchatMessageRoute(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]string{"session_id": "s1", "text": "hello"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webchat/message", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRouteReturns404(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
