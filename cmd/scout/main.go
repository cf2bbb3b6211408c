// Scout discovery server — provides the HTTP API, the prioritized startup
// feed and the conference concierge.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/confscout/scout/pkg/api"
	"github.com/confscout/scout/pkg/cleanup"
	"github.com/confscout/scout/pkg/concierge"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/database"
	"github.com/confscout/scout/pkg/feedback"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/llm/cache"
	"github.com/confscout/scout/pkg/ranking"
	"github.com/confscout/scout/pkg/services"
	"github.com/confscout/scout/pkg/taxonomy"
	"github.com/confscout/scout/pkg/tools"
	"github.com/confscout/scout/pkg/viability"
)

// Exit codes: 1 for configuration errors, 2 when storage is unavailable at
// startup.
const (
	exitConfigError  = 1
	exitStorageError = 2
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	logger := slog.Default()

	slog.Info("Starting scout", "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(exitConfigError)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(exitConfigError)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(exitStorageError)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Load the corpus, optionally seeding it from a snapshot file first
	store := corpus.NewStore(dbClient.Client, logger)
	if seedPath := os.Getenv("CORPUS_SNAPSHOT_PATH"); seedPath != "" {
		if err := store.SeedFromFile(ctx, seedPath); err != nil {
			slog.Error("Failed to seed corpus", "path", seedPath, "error", err)
			os.Exit(exitStorageError)
		}
	}
	if err := store.Load(ctx); err != nil {
		slog.Error("Failed to load corpus", "error", err)
		os.Exit(exitStorageError)
	}
	slog.Info("Corpus loaded", "startups", store.Snapshot().Len())

	// 4. Classification and ranking
	classifier := taxonomy.NewClassifier(cfg.Priorities)
	engine := ranking.NewEngine(store, classifier, logger)

	// 5. LLM gateway and its consumers
	gateway := llm.NewGateway(cfg.LLM, logger)

	assessCache, err := cache.New[viability.Decision](
		cfg.Defaults.CacheMaxSize,
		time.Duration(cfg.Defaults.CacheTTLSeconds)*time.Second,
	)
	if err != nil {
		slog.Error("Failed to create assessment cache", "error", err)
		os.Exit(exitConfigError)
	}
	defer assessCache.Close()
	viabilityFilter := viability.NewFilter(cfg.Viability, cfg.LLM, gateway, assessCache, classifier, logger)

	registry, err := tools.NewStartupRegistry(store)
	if err != nil {
		slog.Error("Failed to build tool registry", "error", err)
		os.Exit(exitConfigError)
	}
	conciergeSvc := concierge.New(gateway, registry, logger)
	feedbackSvc := feedback.NewService(dbClient.Client, gateway, cfg.Defaults, logger)

	startupSvc := services.NewStartupService(store, engine, classifier, logger)
	activitySvc := services.NewActivityService(store, dbClient.Client, logger)
	slog.Info("Services initialized")

	// 6. Background retention loop
	cleanupSvc := cleanup.NewService(feedbackSvc, cfg.LLM.LogDir, logger)
	cleanupSvc.Start(ctx)
	defer cleanupSvc.Stop()

	// 7. HTTP server (non-blocking)
	server := api.NewServer(startupSvc, activitySvc, feedbackSvc, conciergeSvc, viabilityFilter, dbClient, logger)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Scout started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
