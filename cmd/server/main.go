// Portfolio API server: chat assistant and contact endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/manthanmittal/portfolio-server/internal/api"
	"github.com/manthanmittal/portfolio-server/internal/config"
	"github.com/manthanmittal/portfolio-server/internal/content"
	"github.com/manthanmittal/portfolio-server/internal/guard"
	"github.com/manthanmittal/portfolio-server/internal/knowledge"
	"github.com/manthanmittal/portfolio-server/internal/llm"
	"github.com/manthanmittal/portfolio-server/internal/middleware"
	"github.com/manthanmittal/portfolio-server/internal/ratelimit"
	"github.com/manthanmittal/portfolio-server/internal/store"
	"github.com/manthanmittal/portfolio-server/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	corpus, err := content.Load(cfg.ContentPath)
	if err != nil {
		slog.Error("Failed to load content", "error", err, "path", cfg.ContentPath)
		os.Exit(1)
	}
	compiler := knowledge.New(corpus)

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	completer := llm.NewClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	})
	if cfg.LLM.APIKey == "" {
		slog.Warn("NVIDIA_API_KEY not set, chat completions will fail")
	}

	chatLimiter := ratelimit.New(cfg.RateLimit.ChatLimit, cfg.RateLimit.Window)
	contactLimiter := ratelimit.New(cfg.RateLimit.ContactLimit, cfg.RateLimit.Window)

	handler := api.NewHandler(
		compiler,
		completer,
		guard.NewRegexScreener(),
		chatLimiter,
		contactLimiter,
		repo,
		corpus.Profile.Name,
		corpus.Profile.Email,
	)

	// Setup router.
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	allowedOrigins := []string{"*"}
	if cfg.FrontendURL != "" {
		allowedOrigins = []string{cfg.FrontendURL}
	}
	r.Use(middleware.CORS(allowedOrigins))

	handler.RegisterRoutes(r)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.LLM.Timeout,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
