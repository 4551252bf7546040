package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/pharmalife/timetracker/internal"
	"github.com/pharmalife/timetracker/internal/auth"
	"github.com/pharmalife/timetracker/internal/entry"
	entrystore "github.com/pharmalife/timetracker/internal/entry/store"
	"github.com/pharmalife/timetracker/internal/payment"
	paymentstore "github.com/pharmalife/timetracker/internal/payment/store"
	"github.com/pharmalife/timetracker/internal/period"
	periodstore "github.com/pharmalife/timetracker/internal/period/store"
	"github.com/pharmalife/timetracker/internal/storage"
	"github.com/pharmalife/timetracker/internal/summary"
	"github.com/pharmalife/timetracker/internal/transport/rest"
	"github.com/pharmalife/timetracker/internal/worker"
	workerstore "github.com/pharmalife/timetracker/internal/worker/store"
	"github.com/pharmalife/timetracker/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	Store  storage.RecordStore
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler    *auth.Handler
	WorkerHandler  *worker.Handler
	PeriodHandler  *period.Handler
	EntryHandler   *entry.Handler
	PaymentHandler *payment.Handler
	SummaryHandler *summary.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "storage", deps.Config.Storage.Backend)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	pinger, _ := deps.Store.(storage.Pinger)
	rest.RegisterAllRoutes(
		deps.Router,
		pinger,
		deps.Config.Server.AllowedOrigins,
		deps.AuthHandler,
		deps.WorkerHandler,
		deps.PeriodHandler,
		deps.EntryHandler,
		deps.PaymentHandler,
		deps.SummaryHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.L()

	store, err := initStore(config.Storage, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	workerRepo := workerstore.NewRepository(store)
	periodRepo := periodstore.NewRepository(store)
	entryRepo := entrystore.NewRepository(store)
	paymentRepo := paymentstore.NewRepository(store)

	periodService := period.NewService(periodRepo, lg)
	workerService := worker.NewService(workerRepo, lg, config.Security.BCryptCost)
	entryService := entry.NewService(entryRepo, workerRepo, periodService, lg)
	paymentService := payment.NewService(paymentRepo, periodService, entryRepo, workerRepo, lg)
	summaryService := summary.NewService(entryRepo, lg)

	tokens := auth.NewJWTTokenGenerator(config.Security.SessionSecret, config.Security.TokenTTL)
	authService := auth.NewService(workerRepo, tokens, lg)

	return &Dependencies{
		Config: config,
		Store:  store,
		Router: chi.NewRouter(),
		Logger: lg,

		AuthHandler:    auth.NewHandler(authService),
		WorkerHandler:  worker.NewHandler(workerService),
		PeriodHandler:  period.NewHandler(periodService),
		EntryHandler:   entry.NewHandler(entryService),
		PaymentHandler: payment.NewHandler(paymentService),
		SummaryHandler: summary.NewHandler(summaryService),
	}, nil
}

// initStore selects the record-store backend.
func initStore(cfg internal.StorageConfig, lg *slog.Logger) (storage.RecordStore, error) {
	switch cfg.Backend {
	case internal.StorageBackendSQLite:
		return storage.NewGormStore(cfg.SQLitePath, lg)
	default:
		return storage.NewFileStore(cfg.DataDir, lg), nil
	}
}
