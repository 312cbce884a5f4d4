// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, remote source, storage and logging

package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	apperrors "items-app-api/core/errors"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the host serving the item list
	DefaultBaseURL = "https://raw.githubusercontent.com/"

	// DefaultItemsPath is the item list path relative to DefaultBaseURL
	DefaultItemsPath = "lanestp/challenge-for-ios/refs/heads/main/test.json"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Remote contains item service configuration
	Remote RemoteConfig

	// Storage contains local item store configuration
	Storage StorageConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per window
	RateLimit int

	// RateWindowSeconds is the rate limit window length
	RateWindowSeconds int
}

// RemoteConfig holds item service configuration
type RemoteConfig struct {
	BaseURL        string
	Path           string
	TimeoutSeconds int
}

// StorageConfig holds item store backend configuration
type StorageConfig struct {
	// Type specifies the store backend (sqlite/memory/redis)
	Type string

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file, ":memory:" for a throwaway database
	Path string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key the store writes
	KeyPrefix string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend is logrus or zap
	Backend string
	Level   string
	// Format is text or json
	Format string
	// File enables rotated file output when set
	File string
}

// LoadDotEnv loads variables from .env style files into the environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return apperrors.WrapError(err, "failed to load "+path)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Remote: RemoteConfig{
			BaseURL:        getEnvOrDefault("ITEMS_BASE_URL", DefaultBaseURL),
			Path:           getEnvOrDefault("ITEMS_PATH", DefaultItemsPath),
			TimeoutSeconds: getEnvAsIntOrDefault("REMOTE_TIMEOUT_SECONDS", 30),
		},
		Storage: StorageConfig{
			Type: getEnvOrDefault("STORAGE_TYPE", "sqlite"),
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "items.db"),
			},
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "items"),
			},
		},
		Log: LogConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "logrus"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			Format:  getEnvOrDefault("LOG_FORMAT", "text"),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &apperrors.ValidationError{Field: "PORT", Message: "port cannot be empty"}
	}

	if c.Server.RateLimit < 1 {
		return &apperrors.ValidationError{Field: "RATE_LIMIT", Message: "rate limit must be at least 1"}
	}

	if c.Server.RateWindowSeconds < 1 {
		return &apperrors.ValidationError{Field: "RATE_WINDOW_SECONDS", Message: "rate window must be at least 1 second"}
	}

	base, err := url.Parse(c.Remote.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return &apperrors.ValidationError{Field: "ITEMS_BASE_URL", Message: "must be an absolute URL"}
	}

	if c.Remote.TimeoutSeconds < 1 {
		return &apperrors.ValidationError{Field: "REMOTE_TIMEOUT_SECONDS", Message: "timeout must be at least 1 second"}
	}

	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.SQLite.Path == "" {
			return &apperrors.ValidationError{Field: "SQLITE_PATH", Message: "sqlite path cannot be empty when using sqlite storage"}
		}
	case "redis":
		if c.Storage.Redis.Address == "" {
			return &apperrors.ValidationError{Field: "REDIS_ADDRESS", Message: "redis address cannot be empty when using redis storage"}
		}
	case "memory":
	default:
		return &apperrors.ValidationError{Field: "STORAGE_TYPE", Message: "storage type must be 'sqlite', 'memory' or 'redis'"}
	}

	if c.Log.Backend != "logrus" && c.Log.Backend != "zap" {
		return &apperrors.ValidationError{Field: "LOG_BACKEND", Message: "log backend must be 'logrus' or 'zap'"}
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return &apperrors.ValidationError{Field: "LOG_FORMAT", Message: "log format must be 'text' or 'json'"}
	}

	return nil
}
