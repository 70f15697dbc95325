package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinichq/clinic-scheduler/internal/api/router"
	"github.com/clinichq/clinic-scheduler/internal/config"
	"github.com/clinichq/clinic-scheduler/internal/http/handlers"
	"github.com/clinichq/clinic-scheduler/internal/providers"
	"github.com/clinichq/clinic-scheduler/internal/scheduler"
	"github.com/clinichq/clinic-scheduler/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinic-scheduler API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	roster, err := providers.Load(cfg.ProvidersFile)
	if err != nil {
		logger.Error("failed to load provider roster", "error", err, "file", cfg.ProvidersFile)
		os.Exit(1)
	}
	logger.Info("provider roster loaded",
		"providers", roster.Providers.Size(),
		"technicians", len(roster.Rotation),
	)

	metrics := scheduler.NewMetrics(nil)
	svc := scheduler.NewService(roster.Providers, scheduler.NewRing(roster.Rotation), logger, metrics)

	schedulingHandler := handlers.NewSchedulingHandler(svc, logger)
	reportsHandler := handlers.NewReportsHandler(svc, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		Scheduling:         schedulingHandler,
		Reports:            reportsHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
