package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lingo-bridge/internal/api"
	"lingo-bridge/internal/phonetic"
	"lingo-bridge/internal/services"
	"lingo-bridge/internal/share"
	"lingo-bridge/internal/speech"
	"lingo-bridge/internal/translation"
	"lingo-bridge/internal/translator_provider"
	"lingo-bridge/pkg/database"
	"lingo-bridge/pkg/types"
)

func main() {
	// Load application configuration from environment variables
	globalConfig, err := types.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Initialize logger with human-readable timestamps
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.TimeKey = "time"
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logLevel := zap.InfoLevel
	if globalConfig.Server.LogLevel != "" {
		if err := logLevel.UnmarshalText([]byte(globalConfig.Server.LogLevel)); err != nil {
			logLevel = zap.InfoLevel
		}
	}
	logConfig.Level = zap.NewAtomicLevelAt(logLevel)
	logger, err := logConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	// Open the embedded database once; it is closed at shutdown
	db, err := database.NewDB(database.Config{Path: globalConfig.Database.Path}, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	shareStore := share.NewStore(db.DB, logger)
	if err := shareStore.Migrate(context.Background()); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize provider factory and create translator provider
	providerFactory := translator_provider.NewFactory(globalConfig)

	provider, err := providerFactory.CreateProvider(translator_provider.ProviderType(globalConfig.Server.Provider))
	if err != nil {
		logger.Fatal("failed to create translator provider", zap.Error(err))
	}

	// Initialize services
	translationService := translation.NewService(logger, provider, phonetic.NewAnnotator())
	speechService := speech.NewSynthesizer(logger, globalConfig.OpenAI, globalConfig.Speech)

	svc := services.NewServices(translationService, speechService, shareStore)

	// Start the HTTP server
	runServer(logger, globalConfig, svc)
}

func runServer(logger *zap.Logger, cfg *types.Config, svc *services.Services) {

	apiServer := api.NewGinServer(logger, cfg.Server, svc)
	// Create HTTP server
	addr := cfg.Server.GetServerAddress()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      apiServer.GetRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", zap.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Create channel to listen for interrupt signals (Ctrl+C)
	quit := make(chan os.Signal, 1)
	// Notify on SIGINT (Ctrl+C) and SIGTERM (kill command)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	logger.Info("shutting down server...")

	// Create a context with 10-second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
