package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mrhealth/nutrition-platform/internal/admin"
	"github.com/mrhealth/nutrition-platform/internal/api/router"
	"github.com/mrhealth/nutrition-platform/internal/appointments"
	"github.com/mrhealth/nutrition-platform/internal/catalog"
	appconfig "github.com/mrhealth/nutrition-platform/internal/config"
	"github.com/mrhealth/nutrition-platform/internal/http/handlers"
	"github.com/mrhealth/nutrition-platform/internal/notify"
	obsmetrics "github.com/mrhealth/nutrition-platform/internal/observability/metrics"
	"github.com/mrhealth/nutrition-platform/internal/records"
	"github.com/mrhealth/nutrition-platform/internal/reports"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting nutrition-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Select the record store: Postgres when configured, in-memory for
	// development.
	var store records.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = records.NewPostgresStore(pool)
		logger.Info("using postgres record store")
	} else {
		store = records.NewMemoryStore()
		logger.Warn("DATABASE_URL not set, records are held in memory")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = redisClient.Close() }()
	}

	metrics := obsmetrics.NewRecordMetrics(nil)

	apptSvc := appointments.NewService(store, logger, metrics)
	repSvc := reports.NewService(store, logger, metrics)
	catalogStore := catalog.NewStore(redisClient)
	aggregator := admin.NewAggregator(apptSvc, repSvc, logger, metrics)

	r := router.New(&router.Config{
		Logger:             logger,
		Metrics:            metrics,
		Calculator:         handlers.NewCalculatorHandler(logger),
		Booking:            handlers.NewBookingHandler(apptSvc, repSvc, catalogStore, logger),
		Admin:              handlers.NewAdminHandler(aggregator, notify.NewComposer(), catalogStore, cfg.WhatsAppHost, logger),
		AdminJWTSecret:     cfg.AdminJWTSecret,
		MetricsHandler:     promhttp.Handler(),
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
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
