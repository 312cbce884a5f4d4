// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package itemslib

import (
	"time"

	"items-app-api/core/interfaces"
	"items-app-api/infrastructure/cache/memory"
	"items-app-api/infrastructure/cache/sqlite"
	httpInfra "items-app-api/infrastructure/http/standard"
)

// DefaultSQLitePath is the database file used when none is configured
const DefaultSQLitePath = "items.db"

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultMemoryStore creates a default in-memory store
func DefaultMemoryStore() interfaces.ItemStore {
	return memory.NewMemoryStore()
}

// DefaultSQLiteStore creates a SQLite store with the given file path
func DefaultSQLiteStore(filePath string) (*sqlite.Client, error) {
	return sqlite.NewSQLiteStore(filePath)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NoopLogger{}
}
