package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/database"
	"jobboard-api/internal/logger"
	"jobboard-api/internal/server"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/storage/mongodb"
	"jobboard-api/internal/storage/postgres"
	"jobboard-api/internal/telemetry"

	_ "jobboard-api/docs" // Registers the OpenAPI description served at /swagger

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

//	@title			Job Board API
//	@version		1.0
//	@description	Job postings for the job board: create, search, view and list the caller's own jobs.

//	@BasePath	/api/v1
//	@schemes	http https

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		os.Exit(reportFailure(zl, err))
	}
}

// reportFailure logs err and flushes the logger before the process exits,
// since os.Exit skips deferred calls. It returns the exit code.
func reportFailure(zl *zap.Logger, err error) int {
	zl.Error("Application error", zap.Error(err))
	_ = zl.Sync()
	return 1
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialise tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			zl.Warn("Error shutting down tracer", zap.Error(err))
		}
	}()

	jobRepo, closeStore, err := openStore(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer closeStore()

	healthChecks := map[string]handlers.Pinger{"store": jobRepo}

	// --- Initialize Redis Client (optional) ---
	var denylist middleware.TokenDenylist
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.Redis, zl)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		redisDenylist := middleware.NewRedisDenylist(redisClient)
		denylist = redisDenylist
		healthChecks["redis"] = redisDenylist
	} else {
		zl.Info("Redis not configured, token revocation checks disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	application := &app.Application{
		Config:       cfg,
		Logger:       zl,
		JobRepo:      jobRepo,
		Denylist:     denylist,
		Validator:    validator.New(),
		Registry:     registry,
		HealthChecks: healthChecks,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	zl.Info("Application gracefully stopped.")
	return nil
}

// openStore connects the configured job store and prepares its schema.
func openStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (storage.JobRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.Mongo, zl)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				zl.Warn("Error disconnecting from MongoDB", zap.Error(err))
			}
		}
		repo := mongodb.NewJobRepo(client.Database(cfg.Mongo.Database), zl)
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		return repo, closeFn, nil

	case config.DriverPostgres:
		pool, err := database.NewConnectionPool(ctx, cfg.DB, zl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewJobRepo(pool, zl), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
