// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as item storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/sqlite: SQLite item store, the default
// - cache/memory: In-memory item store using go-cache
// - cache/redis: Redis-backed item store
// - remote: HTTP item source that downloads the item list
// - http/standard: Standard library HTTP client with request logging
// - logger: logrus and zap loggers
//
// # Item Stores
//
// Every store assigns ids in increasing order on write and keeps counting
// after DeleteAll:
//
//	store, err := sqlite.NewSQLiteStore("items.db")
//	err = store.WriteAll(ctx, remoteItems)
//	items, err := store.ReadAll(ctx)
//
// # HTTP Client
//
// Requests are sent once, without retries:
//
//	client := standard.NewLoggingHTTPClient(30*time.Second, logger)
//	source, err := remote.NewItemSource(client, baseURL, path)
//	items, err := source.FetchAll(ctx)
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger, err := logger.New(cfg.Log)
//	logger.Info("Populated item cache", map[string]interface{}{
//	    "items": 2,
//	})
package infrastructure
