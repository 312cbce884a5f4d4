// ABOUTME: Main entry point for the Items API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"items-app-api/api"
	"items-app-api/api/handlers"
	"items-app-api/core/interfaces"
	"items-app-api/core/items"
	"items-app-api/infrastructure/cache/memory"
	"items-app-api/infrastructure/cache/redis"
	"items-app-api/infrastructure/cache/sqlite"
	stdhttp "items-app-api/infrastructure/http/standard"
	applogger "items-app-api/infrastructure/logger"
	"items-app-api/infrastructure/remote"
	"items-app-api/pkg/config"
	"items-app-api/pkg/featureflags"
)

// storeBackend is what the server needs from a configured item store
type storeBackend interface {
	interfaces.ItemStore
	handlers.StoreStatsSource
	io.Closer
}

func main() {
	// Load .env before reading the environment
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := applogger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Starting Items API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"storage_type": cfg.Storage.Type,
		"log_backend":  cfg.Log.Backend,
	})

	// Create store
	store, err := openStore(cfg.Storage, logger)
	if err != nil {
		logger.Error("Failed to open item store", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer store.Close()

	// Create HTTP client and remote source
	httpClient := stdhttp.NewLoggingHTTPClient(time.Duration(cfg.Remote.TimeoutSeconds)*time.Second, logger)
	source, err := remote.NewItemSource(httpClient, cfg.Remote.BaseURL, cfg.Remote.Path)
	if err != nil {
		logger.Error("Failed to create item source", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Create repository
	repo := items.NewRepository(interfaces.Dependencies{
		Store:  store,
		Source: source,
		Logger: logger,
	})
	metrics := items.NewCounterMetrics()
	repo.SetMetrics(metrics)
	repo.SetPopulateGuard(!flags.IsEnabled(context.Background(), featureflags.ConcurrentPopulate))

	if flags.IsEnabled(context.Background(), featureflags.WarmCache) {
		warmCache(repo, logger, source.Endpoint())
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = time.Duration(cfg.Server.RateWindowSeconds) * time.Second
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	itemHandler := handlers.NewItemHandler(repo, metrics, store, flags)
	itemHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Remote.TimeoutSeconds+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// openStore builds the store named by cfg.Type. Redis falls back to memory
// when the server cannot be reached.
func openStore(cfg config.StorageConfig, logger interfaces.Logger) (storeBackend, error) {
	switch cfg.Type {
	case "redis":
		redisStore, err := redis.NewRedisStore(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryStore(), nil
		}
		logger.Info("Using Redis store", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisStore, nil
	case "memory":
		logger.Info("Using memory store", nil)
		return memory.NewMemoryStore(), nil
	case "sqlite", "":
		sqliteStore, err := sqlite.NewSQLiteStore(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("Using SQLite store", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteStore, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// warmCache populates the store before the server accepts requests.
// A failure is logged and the first request retries.
func warmCache(repo *items.Repository, logger interfaces.Logger, endpoint string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	list, err := repo.FetchItemList(ctx).Unwrap()
	if err != nil {
		logger.Warn("Cache warm-up failed", map[string]interface{}{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return
	}
	logger.Info("Cache warmed", map[string]interface{}{
		"items": len(list.Items),
	})
}

func init() {
	// Print banner
	fmt.Println(`
  ___ _                      _   ___ ___
 |_ _| |_ ___ _ __  ___     /_\ | _ \_ _|
  | ||  _/ -_) '  \(_-<    / _ \|  _/| |
 |___|\__\___|_|_|_/__/   /_/ \_\_| |___|
	`)
}
