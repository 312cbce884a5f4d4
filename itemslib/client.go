// ABOUTME: Main client for the Items library providing cached item list access
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package itemslib

import (
	"context"
	"io"

	"items-app-api/core/domain"
	apperrors "items-app-api/core/errors"
	"items-app-api/core/interfaces"
	"items-app-api/core/items"
	"items-app-api/core/presentation"
	"items-app-api/core/result"
	"items-app-api/infrastructure/cache/memory"
	"items-app-api/infrastructure/cache/sqlite"
	"items-app-api/infrastructure/remote"
)

// Client is the main entry point for the Items library
type Client struct {
	repo  *items.Repository
	store interfaces.ItemStore

	// closer is set when the client opened the store itself
	closer io.Closer

	config Config
}

// Config holds the configuration for the client
type Config struct {
	// Store overrides the local store. When nil a SQLite or memory store is opened.
	Store interfaces.ItemStore

	// Source overrides the remote item source. When nil an HTTP source is built.
	Source interfaces.ItemSource

	// HTTPClient is used by the default HTTP source
	HTTPClient interfaces.HTTPClient

	Logger  interfaces.Logger
	Metrics items.Metrics

	// BaseURL and Path locate the item list for the default HTTP source
	BaseURL string
	Path    string

	// SQLitePath is the database file for the default store
	SQLitePath string

	// UseMemoryStore selects an in-process store instead of SQLite
	UseMemoryStore bool
}

// NewClient creates a new Items client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	client := &Client{config: config}

	store := config.Store
	if store == nil {
		if config.UseMemoryStore {
			store = memory.NewMemoryStore()
		} else {
			sqliteStore, err := sqlite.NewSQLiteStore(config.SQLitePath)
			if err != nil {
				return nil, err
			}
			store = sqliteStore
			client.closer = sqliteStore
		}
	}

	source := config.Source
	if source == nil {
		httpSource, err := remote.NewItemSource(config.HTTPClient, config.BaseURL, config.Path)
		if err != nil {
			client.Close()
			return nil, err
		}
		source = httpSource
	}

	client.store = store
	client.repo = items.NewRepository(interfaces.Dependencies{
		Store:  store,
		Source: source,
		Logger: config.Logger,
	})
	if config.Metrics != nil {
		client.repo.SetMetrics(config.Metrics)
	}

	return client, nil
}

// Close releases the store if the client opened it
func (c *Client) Close() error {
	if c.closer != nil {
		err := c.closer.Close()
		c.closer = nil
		return err
	}
	return nil
}

// FetchItemList returns the cached item list, downloading it on first use
func (c *Client) FetchItemList(ctx context.Context) result.Outcome[domain.ItemListResult] {
	return c.repo.FetchItemList(ctx)
}

// Reset clears the local store so the next FetchItemList downloads again
func (c *Client) Reset(ctx context.Context) error {
	return c.repo.Reset(ctx)
}

// NewViewModel returns a presentation view model backed by this client
func (c *Client) NewViewModel() *presentation.ViewModel {
	return presentation.NewViewModel(c.repo)
}

// validateConfig checks that the client can be built from config
func validateConfig(config *Config) error {
	if config.Source == nil {
		if config.HTTPClient == nil {
			return &apperrors.ValidationError{Field: "HTTPClient", Message: "an HTTP client is required when no source is provided"}
		}
		if config.BaseURL == "" {
			return &apperrors.ValidationError{Field: "BaseURL", Message: "a base URL is required when no source is provided"}
		}
	}

	if config.Store == nil && !config.UseMemoryStore && config.SQLitePath == "" {
		return &apperrors.ValidationError{Field: "SQLitePath", Message: "a database path is required for the SQLite store"}
	}

	if config.Logger == nil {
		config.Logger = QuietLogger()
	}

	return nil
}
