package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/kaushiksr22/advisor-voice-agent/internal/api/router"
	"github.com/kaushiksr22/advisor-voice-agent/internal/booking"
	appconfig "github.com/kaushiksr22/advisor-voice-agent/internal/config"
	"github.com/kaushiksr22/advisor-voice-agent/internal/dialogue"
	"github.com/kaushiksr22/advisor-voice-agent/internal/extraction"
	"github.com/kaushiksr22/advisor-voice-agent/internal/handoff"
	"github.com/kaushiksr22/advisor-voice-agent/internal/http/handlers"
	"github.com/kaushiksr22/advisor-voice-agent/internal/notify"
	"github.com/kaushiksr22/advisor-voice-agent/internal/observability/metrics"
	"github.com/kaushiksr22/advisor-voice-agent/internal/transcribe"
	"github.com/kaushiksr22/advisor-voice-agent/internal/webchat"
	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

func main() {
	// Local development convenience; production sets real env vars.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting advisor-voice-agent API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"booking_store", cfg.BookingStore,
	)

	ctx := context.Background()

	store, cleanup, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize booking store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	turnMetrics := metrics.NewTurnMetrics(registry)

	var llmClient extraction.LLMClient
	var transcriber transcribe.Transcriber
	if cfg.GeminiAPIKey != "" {
		gemini, err := extraction.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = gemini.Close() }()
		llmClient = gemini

		tr, err := transcribe.NewGeminiTranscriber(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID, logger)
		if err != nil {
			logger.Error("failed to create transcriber", "error", err)
			os.Exit(1)
		}
		defer func() { _ = tr.Close() }()
		transcriber = tr
	} else {
		// Without a key the extractor fails fast and every turn uses the
		// local rule-based parser; voice turns degrade to silence.
		logger.Warn("GEMINI_API_KEY not set, running with rule-based extraction only")
	}

	engine := dialogue.NewEngine(dialogue.Config{
		Extractor:      extraction.NewExtractor(llmClient, cfg.ExtractionTimeout, logger),
		Store:          store,
		SecureLinkBase: cfg.SecureLinkBase,
		TimezoneLabel:  cfg.TimezoneLabel,
		Logger:         logger,
		Metrics:        turnMetrics,
	})

	var sender notify.EmailSender = notify.NewStubEmailSender(logger)
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	}

	handoffService := handoff.NewService(handoff.Config{
		Store:     store,
		Sender:    sender,
		TeamEmail: cfg.AdvisorTeamEmail,
		Logger:    logger,
	})

	r := router.New(&router.Config{
		Logger: logger,
		TurnHandler: handlers.NewTurnHandler(handlers.TurnHandlerConfig{
			Engine:      engine,
			Transcriber: transcriber,
			Logger:      logger,
		}),
		SecureDetailsHandler: handlers.NewSecureDetailsHandler(handoffService, logger),
		WebchatHandler:       webchat.NewHandler(engine, logger),
		MetricsHandler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		TurnRatePerSecond:    2,
		TurnBurst:            10,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// buildStore selects the booking store backend from configuration.
func buildStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (booking.Store, func(), error) {
	switch cfg.BookingStore {
	case "", "memory":
		return booking.NewMemoryStore(), func() {}, nil

	case "redis":
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("using redis booking store", "addr", cfg.RedisAddr)
		return booking.NewRedisStore(client), func() { _ = client.Close() }, nil

	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("BOOKING_STORE=postgres requires DATABASE_URL")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgx pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres ping: %w", err)
		}
		logger.Info("using postgres booking store")
		return booking.NewPostgresStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown BOOKING_STORE %q", cfg.BookingStore)
	}
}
