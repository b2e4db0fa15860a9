// Package router assembles the HTTP surface of the scheduling agent.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kaushiksr22/advisor-voice-agent/internal/http/handlers"
	httpmiddleware "github.com/kaushiksr22/advisor-voice-agent/internal/http/middleware"
	"github.com/kaushiksr22/advisor-voice-agent/internal/webchat"
	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger               *logging.Logger
	TurnHandler          *handlers.TurnHandler
	SecureDetailsHandler *handlers.SecureDetailsHandler
	WebchatHandler       *webchat.Handler
	MetricsHandler       http.Handler
	CORSAllowedOrigins   []string

	// TurnRatePerSecond limits turn endpoints per session. Zero disables
	// rate limiting.
	TurnRatePerSecond float64
	TurnBurst         int
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.TurnRatePerSecond > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.TurnRatePerSecond, cfg.TurnBurst))
		}
		api.Post("/text-turn", cfg.TurnHandler.TextTurn)
		api.Post("/voice-turn", cfg.TurnHandler.VoiceTurn)
		api.Post("/secure-details", cfg.SecureDetailsHandler.Handle)
	})

	if cfg.WebchatHandler != nil {
		r.Route("/webchat", func(ws chi.Router) {
			ws.Get("/ws", cfg.WebchatHandler.HandleWebSocket)
			ws.Post("/message", cfg.WebchatHandler.HandleMessage)
		})
	}

	return r
}
