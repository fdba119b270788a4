package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/messaging"
	"storefront/internal/server"
	"storefront/internal/services/catalog"
	"storefront/internal/services/notification"
	"storefront/internal/services/order"
)

func main() {
	var (
		port           = flag.Int("port", 0, "HTTP port (overrides PORT env)")
		migrationsPath = flag.String("migrations", "migrations", "Path to SQL migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	log := logger.New("storefront")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", "Starting storefront service", requestID, map[string]any{
		"port":               cfg.Port,
		"pickup_window_days": cfg.Orders.PickupWindowDays,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, *migrationsPath); err != nil {
		log.Error("service_failed", "Storefront service failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, migrationsPath string) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	catalogService := catalog.NewService(catalog.NewPostgresRepository(db), log)
	if err := catalogService.SeedIfEmpty(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	var publisher notification.EventPublisher
	if cfg.MessagingEnabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()

		log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)
		publisher = messaging.NewPublisher(conn, log)
	}

	dispatcher := notification.NewDispatcher(catalogService, publisher, cfg.Notify, log)

	orderService := order.NewService(order.NewPostgresRepository(db), catalogService, log, cfg.Orders.PickupWindowDays)

	handler := server.NewRouter(log, db,
		catalog.NewHandler(catalogService, log),
		order.NewHandler(orderService, dispatcher, log),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	go func() {
		log.Info("http_listening", fmt.Sprintf("Storefront service listening on port %d", cfg.Port), requestID, map[string]any{
			"port": cfg.Port,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
