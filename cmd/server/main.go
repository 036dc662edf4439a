package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"casino-ledger/internal/auth"
	"casino-ledger/internal/broadcast"
	"casino-ledger/internal/cache"
	"casino-ledger/internal/config"
	"casino-ledger/internal/database"
	"casino-ledger/internal/gateway"
	"casino-ledger/internal/handler"
	"casino-ledger/internal/logger"
	"casino-ledger/internal/metrics"
	"casino-ledger/internal/repository/postgres"
	"casino-ledger/internal/service"
	"casino-ledger/internal/worker"

	_ "casino-ledger/docs"
)

// @title Casino Ledger API
// @version 1.0
// @description Transaction settlement core for casino gaming: ledger, sessions and payment reconciliation
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Setup logger
	log := logger.New(true)

	// .env is optional, environment variables win
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Balance cache; redis being down only costs database reads
	var balanceCache cache.BalanceCache
	redisCache, err := cache.NewRedisBalanceCache(cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, balance caching disabled")
		balanceCache = cache.NopBalanceCache{}
	} else {
		balanceCache = redisCache
		defer redisCache.Close()
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Prometheus collectors, registered once
	m := metrics.New()

	// Websocket hub for session events
	hub := broadcast.NewHub(log)
	go hub.Run()
	defer hub.Stop()

	minDeposit, maxDeposit, err := cfg.Betting.DepositBounds()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid deposit bounds")
	}

	// Services
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	gatewayClient := gateway.NewClient(cfg.Gateway)

	settlementService := service.NewSettlementService(accountRepo, transactionRepo, txManager, balanceCache, m, log)
	sessionService := service.NewSessionService(sessionRepo, accountRepo, settlementService, txManager, balanceCache, hub, config.BetLimits(), log)
	paymentService := service.NewPaymentService(settlementService, gatewayClient, m, log, cfg.Server.BaseURL, minDeposit, maxDeposit)
	accountService := service.NewAccountService(accountRepo, tokens, log)
	retryService := service.NewRetryService(transactionRepo, settlementService, m, cfg.Worker.RetryBatchSize, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker re-queueing failed deposits
	retryWorker := worker.NewRetryWorker(retryService, cfg.Worker.RetryInterval, log)
	retryWorker.Start(ctx)
	defer retryWorker.Stop()

	// http handler
	h := handler.NewHandler(accountService, settlementService, sessionService, paymentService, hub, tokens, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
