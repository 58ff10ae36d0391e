package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/minibank/internal/adapter/http"
	"github.com/iho/minibank/internal/adapter/http/handler"
	"github.com/iho/minibank/internal/adapter/repository/memory"
	redisRepo "github.com/iho/minibank/internal/adapter/repository/redis"
	"github.com/iho/minibank/internal/infrastructure/config"
	"github.com/iho/minibank/internal/infrastructure/logger"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	infraRedis "github.com/iho/minibank/internal/infrastructure/redis"
	"github.com/iho/minibank/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// In-memory data layer
	store := memory.NewStore()
	if cfg.SeedDemoData {
		store.Seed()
		appLogger.Info().Msg("seeded demo data")
	}

	// Optional Redis idempotency cache
	var idempotencyStore usecase.IdempotencyStore
	healthHandler := handler.NewHealthHandler(nil)
	if cfg.RedisURL != "" {
		redisClient, err := infraRedis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		healthHandler = handler.NewHealthHandler(redisClient)
	}

	// Initialize repositories
	txManager := memory.NewTxManager(store)
	accountRepo := memory.NewAccountRepository(store)
	txnRepo := memory.NewTransactionRepository(store)
	logRepo := memory.NewSecurityLogRepository(store)
	credRepo := memory.NewCredentialRepository(store)
	sessions := memory.NewSessionStore(store)
	idGen := memory.NewULIDGenerator()

	// Initialize use cases
	authUC := usecase.NewAuthUseCase(txManager, accountRepo, credRepo, logRepo, sessions, idGen, cfg.SessionTTL)
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, txnRepo, logRepo, idGen)
	securityUC := usecase.NewSecurityUseCase(logRepo)

	// Initialize handlers
	m := metrics.New()
	authHandler := handler.NewAuthHandler(authUC, m)
	accountHandler := handler.NewAccountHandler(ledgerUC, m)
	transferHandler := handler.NewTransferHandler(ledgerUC, m)
	securityHandler := handler.NewSecurityHandler(securityUC)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:      authHandler,
		AccountHandler:   accountHandler,
		TransferHandler:  transferHandler,
		SecurityHandler:  securityHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
