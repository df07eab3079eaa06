package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/irfndi/oddsframe/internal/api"
	"github.com/irfndi/oddsframe/internal/api/handlers"
	"github.com/irfndi/oddsframe/internal/cache"
	"github.com/irfndi/oddsframe/internal/config"
	"github.com/irfndi/oddsframe/internal/database"
	"github.com/irfndi/oddsframe/internal/logging"
	"github.com/irfndi/oddsframe/internal/services"
	"github.com/irfndi/oddsframe/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.Environment, os.Stdout)
	stdLogger := logging.Wrap(logger)

	ctx := context.Background()

	telemetryConfig := telemetry.DefaultConfig()
	telemetryConfig.Enabled = cfg.Telemetry.Enabled
	telemetryConfig.Exporter = cfg.Telemetry.Exporter
	telemetryConfig.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	telemetryConfig.SampleRate = cfg.Telemetry.SampleRate
	telemetryConfig.Environment = cfg.Environment
	telemetryConfig.ServiceVersion = handlers.Version
	provider, err := telemetry.InitTelemetry(ctx, telemetryConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Failed to shutdown telemetry")
		}
	}()

	var db *database.PostgresDB
	var pool database.DatabasePool
	if cfg.Dataset.Source == config.SourcePostgres {
		db, err = database.NewPostgresConnection(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		pool = db.Pool
	}

	data, err := services.LoadDataset(ctx, cfg.Dataset, pool, logger)
	if err != nil {
		return err
	}

	var redisClient *database.RedisClient
	var resultCache cache.ResultCache
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisConnection(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		rc := cache.NewRedisResultCache(redisClient.Client, cfg.Redis.CacheTTL(), logger)
		defer rc.LogStats()
		resultCache = rc
	}

	queries := services.NewQueryService(cfg.Dataset.Name, data, resultCache, logger)
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.RouterConfig{
		ServiceName:  telemetryConfig.ServiceName,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       logger,
	}, api.Dependencies{
		DB:      db,
		Redis:   redisClient,
		Queries: queries,
		Goals:   services.NewGoalService(queries),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Query-Fingerprint", "X-Cache", "X-Result-Rows"},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           corsHandler.Handler(router),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		stdLogger.LogStartup(telemetryConfig.ServiceName, handlers.Version, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		stdLogger.LogShutdown(telemetryConfig.ServiceName, "signal received: "+sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	stdLogger.WithService(telemetryConfig.ServiceName).WithField("dataset", cfg.Dataset.Name).Info("Server exited gracefully")
	return nil
}
