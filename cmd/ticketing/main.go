package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/gateway"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/notification"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/reservation"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
	"github.com/DanielPopoola/ticketing-engine/internal/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting ticketing service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	if err := postgres.Migrate(cfg.Database.MigrationURL(), logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := cfg.Redis.NewRedisClient(ctx)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	m := metrics.New()

	ledger := postgres.NewLedger(db.Pool)
	ticketRepo := postgres.NewTicketRepository(db.Pool)
	emailRepo := postgres.NewEmailRepository(db.Pool)
	store := reservation.NewRedisStore(rdb)

	// Request handlers retry transient gateway failures inline. Sweeps do
	// not, the next tick is their retry.
	gatewayClient := gateway.NewInstrumentedClient(gateway.NewClient(cfg.Gateway), m)
	retryingGateway := gateway.NewRetryClient(gatewayClient, cfg.Retry)

	purchaseService := services.NewPurchaseService(ledger, store, retryingGateway, cfg.Reservation, cfg.Gateway.Currency, m, logger)
	confirmService := services.NewConfirmService(ledger, ticketRepo, store, retryingGateway, m, logger)
	checkInService := services.NewCheckInService(ticketRepo, logger)
	queryService := services.NewQueryService(ticketRepo)
	eventService := services.NewEventService(ledger, logger)

	sweepConfirm := services.NewConfirmService(ledger, ticketRepo, store, gatewayClient, m, logger)
	paymentService := services.NewPaymentService(ledger, gatewayClient, logger)
	refundService := services.NewRefundService(ledger, ticketRepo, gatewayClient, cfg.Gateway.Currency, logger)

	emailSettings := notification.NewCachedEmailSettings(rdb, emailRepo, cfg.Notification.SettingsCacheTTL, logger)
	dispatcher, brokerCheck, closeDispatcher := newDispatcher(cfg.Notification, logger)
	defer closeDispatcher()

	h := handlers.NewHandlers(
		purchaseService,
		confirmService,
		checkInService,
		queryService,
		eventService,
		emailSettings,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	rest.RegisterDocsRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", rest.Health(map[string]rest.HealthCheck{
		"postgres": db.Pool.Ping,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		"broker":   brokerCheck,
	}))

	doc, err := rest.LoadOpenAPI()
	if err != nil {
		logger.Error("failed to load api document", "error", err)
		os.Exit(1)
	}
	validate, err := middleware.OpenAPIValidation(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	handler := middleware.Metrics(m)(mux)
	handler = validate(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reconciler := worker.NewReconciler(
		worker.Dependencies{
			Confirmer:  sweepConfirm,
			Bills:      store,
			Tickets:    ticketRepo,
			Payments:   paymentService,
			Refunds:    refundService,
			Dispatcher: dispatcher,
			Settings:   emailSettings,
			Templates:  emailRepo,
		},
		cfg.Worker,
		cfg.Notification.EventURLBase,
		m,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// newDispatcher publishes to RabbitMQ when a broker is configured and only
// logs otherwise.
func newDispatcher(cfg config.NotificationConfig, logger *slog.Logger) (application.NotificationDispatcher, rest.HealthCheck, func()) {
	if cfg.AMQPURL == "" {
		logger.Warn("no amqp url configured, notifications are only logged")
		return notification.NewLogDispatcher(logger), func(context.Context) error { return nil }, func() {}
	}

	publisher, err := notification.NewAMQPPublisher(cfg.AMQPURL, cfg.Queue, logger)
	if err != nil {
		logger.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	check := func(context.Context) error { return publisher.HealthCheck() }
	return publisher, check, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close broker connection", "error", err)
		}
	}
}
