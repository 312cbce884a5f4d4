// ABOUTME: Storage interface for the locally persisted item list
// ABOUTME: Implemented by the SQLite, Redis and in-memory stores

package interfaces

import (
	"context"

	"items-app-api/core/domain"
)

// ItemStore is the local persistence the repository reads through.
// Failures are returned as *errors.StorageError.
//
// Example usage:
//
//	has, err := store.HasData(ctx)
//	if err == nil && !has {
//		err = store.WriteAll(ctx, remoteItems)
//	}
//	items, err := store.ReadAll(ctx)
type ItemStore interface {
	// HasData reports whether at least one item is stored.
	// An empty store is (false, nil), never an error.
	HasData(ctx context.Context) (bool, error)

	// ReadAll returns every stored item ordered by ID.
	// Returns an empty, non-nil slice when the store is empty.
	ReadAll(ctx context.Context) ([]domain.Item, error)

	// WriteAll maps each remote item to a storage row, assigns it an ID and
	// persists it. Either every item is stored or none is.
	WriteAll(ctx context.Context, items []domain.RemoteItem) error

	// DeleteAll removes every stored item. IDs are not reused afterwards.
	DeleteAll(ctx context.Context) error
}
