package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"narad-backend/application/ports"
	"narad-backend/application/services"
	domainknowledge "narad-backend/domain/knowledge"
	domainservices "narad-backend/domain/services"
	"narad-backend/infrastructure/config"
	"narad-backend/infrastructure/generation"
	"narad-backend/infrastructure/generation/gemini"
	"narad-backend/infrastructure/knowledge"
	"narad-backend/infrastructure/persistence/memory"
	"narad-backend/interfaces/http/rest"
	"narad-backend/pkg/observability"

	"go.uber.org/zap"
)

func main() {
	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Knowledge store: external seed if configured, built-in dataset
	// otherwise.
	var repo *knowledge.Repository
	if cfg.KnowledgeSeedPath != "" {
		repo, err = knowledge.NewRepositoryFromFile(cfg.KnowledgeSeedPath, logger)
		if err != nil {
			logger.Fatal("Failed to load knowledge seed", zap.Error(err))
		}
	} else {
		repo = knowledge.NewRepository(logger)
	}

	// Session store with LRU + TTL eviction. The eviction hook is attached
	// only after the metrics exist so the TTL reaper never observes a
	// half-wired observer.
	sessions := memory.NewSessionStore(logger,
		memory.WithCapacity(cfg.Session.Capacity),
		memory.WithTTL(cfg.Session.TTL),
	)
	metrics := observability.NewMetrics(func() float64 { return float64(sessions.Len()) })
	sessions.SetEvictionHook(func(string) { metrics.RecordSessionEvicted() })

	// Generation backend: Gemini when a key is present, the canned mock
	// otherwise. Either way the pipeline degrades gracefully.
	var genService ports.GenerationService
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.Generation.Timeout,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize generation client", zap.Error(err))
		}
		genService = client
	} else if cfg.IsDevelopment() {
		logger.Warn("GEMINI_API_KEY not set, using mock generation service")
		genService = generation.NewMockService()
	} else {
		logger.Warn("GEMINI_API_KEY not set, external generation disabled")
	}

	classifier := domainservices.NewIntentClassifier(domainknowledge.MonumentGreetings())
	generator := services.NewResponseGenerator(
		genService,
		domainknowledge.MonumentGreetings(),
		ports.GenerationParams{
			Temperature: cfg.Generation.Temperature,
			MaxTokens:   cfg.Generation.MaxTokens,
			TopP:        cfg.Generation.TopP,
			TopK:        cfg.Generation.TopK,
		},
		cfg.Generation.MinEnhancementLength,
		metrics,
		logger,
	)
	chatService := services.NewChatService(
		sessions,
		repo,
		classifier,
		generator,
		cfg.Session.HistoryWindow,
		metrics,
		logger,
	)

	// Dynamic config watcher: retunes generation sampling, the enhancement
	// feature flag and the history window without a restart.
	if cfg.DynamicConfigPath != "" {
		watcher, err := config.NewConfigWatcher(cfg.DynamicConfigPath, logger)
		if err != nil {
			logger.Warn("Dynamic config unavailable", zap.Error(err))
		} else {
			applyDynamic := func(dc *config.DynamicConfig) {
				generator.UpdateParams(ports.GenerationParams{
					Temperature: dc.Generation.Temperature,
					MaxTokens:   dc.Generation.MaxTokens,
					TopP:        dc.Generation.TopP,
					TopK:        dc.Generation.TopK,
				}, dc.Generation.MinEnhancementLength)
				generator.SetGenerationEnabled(dc.Features.EnableGeneration)
				chatService.SetHistoryWindow(dc.Limits.HistoryWindow)
			}
			applyDynamic(watcher.GetCurrent())
			watcher.OnChange(applyDynamic)
			watcher.Start()
			defer watcher.Stop()
		}
	}

	var restMetrics *observability.Metrics
	if cfg.EnableMetrics {
		restMetrics = metrics
	}
	router := rest.NewRouter(chatService, genService, restMetrics, cfg.EnableCORS, logger)
	handler := router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.Bool("generation", genService != nil),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
