package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flashspace/leads-api/internal/api/router"
	appconfig "github.com/flashspace/leads-api/internal/config"
	"github.com/flashspace/leads-api/internal/http/handlers"
	"github.com/flashspace/leads-api/internal/notify"
	"github.com/flashspace/leads-api/internal/observability/metrics"
	"github.com/flashspace/leads-api/internal/sheets"
	"github.com/flashspace/leads-api/pkg/logging"
)

func main() {
	// Best-effort .env for local development; production uses real env vars.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	logger.Info("starting FlashSpace leads API",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_configured", cfg.EmailConfigured(),
		"sheets_configured", cfg.SheetsID != "",
	)
	if !cfg.EmailConfigured() {
		logger.Warn("SENDGRID_API_KEY not set; submissions will be rejected with a configuration error")
	}

	metricsHandler, leadMetrics := setupMetrics()
	notifier := notify.NewSendGridNotifier(cfg, logger)
	appender := sheets.NewAppender(cfg, logger)

	leadHandler := handlers.NewLeadHandler(notifier, appender, leadMetrics, logger)
	healthHandler := handlers.NewHealthHandler(cfg.EmailConfigured())

	r := router.New(&router.Config{
		Logger:             logger,
		LeadHandler:        leadHandler,
		HealthHandler:      healthHandler,
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// setupMetrics wires the lead counters onto their own registry so tests can
// exercise the exposition endpoint without touching the default registerer.
func setupMetrics() (http.Handler, *metrics.LeadMetrics) {
	reg := prometheus.NewRegistry()
	m := metrics.NewLeadMetrics(reg)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), m
}
