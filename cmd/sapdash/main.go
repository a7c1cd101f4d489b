package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	sapadapter "github.com/ericfisherdev/sapdash/internal/adapter/driven/sap"
	sqliteadapter "github.com/ericfisherdev/sapdash/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/sapdash/internal/adapter/driving/http"
	"github.com/ericfisherdev/sapdash/internal/application"
	"github.com/ericfisherdev/sapdash/internal/config"
	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"sap_api_url", cfg.SAPAPIURL,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations (catalog schema + seed) on the writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire adapters.
	employeeStore := sqliteadapter.NewEmployeeRepo(db)
	documentStore := sqliteadapter.NewDocumentRepo(db)
	analyticsStore := sqliteadapter.NewAnalyticsRepo(db)

	// 6. Create services. The order service starts in demo mode unless the
	// environment supplies initial credentials.
	orderSvc := application.NewOrderService(
		func(creds model.Credentials) driven.SalesOrderClient {
			return sapadapter.NewClient(creds)
		},
		slog.Default(),
	)
	if cfg.HasSAPCredentials() {
		orderSvc.SetCredentials(cfg.SAPUsername, cfg.SAPPassword, cfg.SAPAPIURL)
		slog.Info("sap credentials seeded from environment", "username", cfg.SAPUsername)
	} else {
		slog.Info("no sap credentials configured, serving sample data until connected")
	}

	catalogSvc := application.NewCatalogService(employeeStore, documentStore, analyticsStore)

	// 7. Create HTTP handler and routes.
	apiHandler := httphandler.NewHandler(
		orderSvc,
		catalogSvc,
		func(creds model.Credentials) httphandler.GatewayClient {
			return sapadapter.NewClient(creds)
		},
		slog.Default(),
	)
	handler := httphandler.NewServeMux(apiHandler, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("sapdash started", "listen_addr", cfg.ListenAddr)

	// 8. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 9. Graceful shutdown with 10s timeout for HTTP server drain.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
