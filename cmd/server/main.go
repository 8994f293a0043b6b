package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"coin-purchase/internal/catalog"
	"coin-purchase/internal/client/backend"
	"coin-purchase/internal/client/gateway"
	"coin-purchase/internal/config"
	"coin-purchase/internal/database"
	"coin-purchase/internal/handler"
	"coin-purchase/internal/logger"
	"coin-purchase/internal/purchase"
	"coin-purchase/internal/repository/postgres"
	"coin-purchase/internal/service"
	"coin-purchase/internal/worker"

	_ "coin-purchase/docs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// @title Coin Purchase API
// @version 1.0
// @description API for buying coin packages with card payments
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Local .env is optional
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(config.LogConfig{Pretty: true, Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Outbound clients
	backendClient := backend.New(cfg.Backend, log)
	deps := purchase.Deps{
		Backend:              backendClient,
		Recorder:             backendClient,
		AuthorizationTimeout: cfg.Purchase.AuthorizationTimeout,
		CreditTimeout:        cfg.Purchase.CreditTimeout,
	}
	if cfg.Gateway.PublishableKey != "" {
		deps.Gateway = gateway.New(cfg.Gateway, log)
	} else {
		log.Warn().Msg("GATEWAY_PUBLISHABLE_KEY not set, card payments are disabled")
	}

	var workers []*worker.PeriodicWorker

	// Credit journal and reconciliation
	if cfg.Purchase.JournalEnabled {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		dbPool, err := database.NewPool(dbCtx, cfg.Database)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer dbPool.Close()

		creditRepo := postgres.NewCreditRepository(dbPool)
		txManager := postgres.NewTransactionManager(dbPool)
		deps.Journal = creditRepo

		reconcileService := service.NewReconciliationService(
			creditRepo, txManager, backendClient, cfg.Purchase.ReconcileAutoRetry, cfg.Purchase.CapturedGrace, log)
		workers = append(workers, worker.NewReconciliationWorker(reconcileService, cfg.Worker.ReconcileInterval, log))
	} else {
		log.Warn().Msg("credit journal disabled, captured but uncredited payments are only logged")
	}

	cat, err := catalog.Load(cfg.Purchase.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Purchase.CatalogFile).Msg("failed to load coin catalog")
	}

	// Services
	purchaseService := service.NewPurchaseService(cat, deps, log)
	workers = append(workers, worker.NewDialogueSweeper(purchaseService, cfg.Worker.SweepInterval, cfg.Worker.DialogueIdleTimeout, log))

	for _, w := range workers {
		w.Start(ctx)
	}
	defer stopWorkers(workers)

	// http handler
	h := handler.NewHandler(purchaseService, log)
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

	log.Info().Str("port", cfg.Server.Port).Bool("journal", cfg.Purchase.JournalEnabled).Msg("Server started")

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

	closeOpenDialogues(shutdownCtx, purchaseService, log)
	log.Info().Msg("Shutdown complete")
}

func stopWorkers(workers []*worker.PeriodicWorker) {
	for _, w := range workers {
		w.Stop()
	}
}

// closeOpenDialogues closes every dialogue still open so late gateway results are journaled as abandoned
func closeOpenDialogues(ctx context.Context, svc service.PurchaseService, log zerolog.Logger) {
	closed, err := svc.CloseIdle(ctx, 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to close open purchase dialogues")
		return
	}
	if closed > 0 {
		log.Info().Int("closed", closed).Msg("open purchase dialogues closed")
	}
}
