// ABOUTME: Configuration options for the Items library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package itemslib

import (
	apperrors "items-app-api/core/errors"
	"items-app-api/core/interfaces"
	"items-app-api/core/items"
	"items-app-api/pkg/config"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithStore sets a custom item store. The caller keeps ownership and closes it.
func WithStore(store interfaces.ItemStore) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithSource sets a custom item source
func WithSource(source interfaces.ItemSource) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for the default source
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets the repository metrics sink
func WithMetrics(metrics items.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithBaseURL sets the item service base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return &apperrors.ValidationError{Field: "BaseURL", Message: "base URL cannot be empty"}
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithPath sets the item list path relative to the base URL
func WithPath(path string) Option {
	return func(c *Config) error {
		c.Path = path
		return nil
	}
}

// WithSQLitePath sets the SQLite database file
func WithSQLitePath(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return &apperrors.ValidationError{Field: "SQLitePath", Message: "database path cannot be empty"}
		}
		c.SQLitePath = path
		c.UseMemoryStore = false
		return nil
	}
}

// WithMemoryStore keeps items in process memory only
func WithMemoryStore() Option {
	return func(c *Config) error {
		c.UseMemoryStore = true
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient: DefaultHTTPClient(),
		Logger:     QuietLogger(),
		BaseURL:    config.DefaultBaseURL,
		Path:       config.DefaultItemsPath,
		SQLitePath: DefaultSQLitePath,
	}
}
