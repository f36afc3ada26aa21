package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jwebster45206/plot-engine/internal/config"
	"github.com/jwebster45206/plot-engine/internal/handlers"
	"github.com/jwebster45206/plot-engine/internal/logger"
	"github.com/jwebster45206/plot-engine/internal/middleware"
	"github.com/jwebster45206/plot-engine/internal/services"
	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/beatsheet"
)

func main() {
	// Load .env file if present (development convenience)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Setup(cfg)
	log.Info("Starting plot-engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"analyzer_provider", cfg.AnalyzerProvider)

	store := storage.NewRedisStorage(cfg.RedisURL, log)
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close storage", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := store.WaitForConnection(ctx); err != nil {
		cancel()
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	cancel()

	templates := beatsheet.NewRegistry()
	templatesDir := filepath.Join(cfg.DataDir, "templates")
	if _, err := os.Stat(templatesDir); err == nil {
		if err := templates.LoadDir(templatesDir); err != nil {
			log.Error("Failed to load custom templates", "error", err, "dir", templatesDir)
			os.Exit(1)
		}
	}
	log.Info("Beat sheet templates loaded", "templates", templates.Names())

	var remote services.Analyzer
	if cfg.AnalyzerProvider == config.AnalyzerRemote {
		remote = services.NewRemoteAnalyzer(cfg.AnalyzerURL, cfg.AnalyzerAPIKey, cfg.AnalyzerRPS)
	}
	analyzer := services.NewTieredAnalyzer(remote, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, log))
	mux.Handle("/v1/structures/", handlers.NewStructureHandler(store, templates, log))
	mux.Handle("/v1/characters/", handlers.NewCharactersHandler(store, log))
	mux.Handle("/v1/research/", handlers.NewResearchHandler(store, analyzer, log))
	mux.Handle("/v1/analytics/", handlers.NewAnalyticsHandler(store, analyzer, log))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.Logger(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server stopped")
}
