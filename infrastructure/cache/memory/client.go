// ABOUTME: In-memory item store built on go-cache with no expiration
// ABOUTME: Behaves like the SQLite store but lives only as long as the process

package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"items-app-api/core/domain"
	apperrors "items-app-api/core/errors"
	"items-app-api/core/mapper"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements the ItemStore interface using in-memory storage
type MemoryStore struct {
	items *gocache.Cache
	mu    sync.Mutex
	// lastID is never reset so ids keep increasing across DeleteAll
	lastID int64
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// HasData reports whether at least one item is stored
func (s *MemoryStore) HasData(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, apperrors.NewStorageError("has data", err)
	}
	return s.items.ItemCount() > 0, nil
}

// ReadAll returns every stored item ordered by id
func (s *MemoryStore) ReadAll(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageError("read all", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.items.Items()
	rows := make([]domain.StorageItem, 0, len(entries))
	for _, entry := range entries {
		row, ok := entry.Object.(domain.StorageItem)
		if !ok {
			continue
		}
		rows = append(rows, copyRow(row))
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return mapper.StorageListToItems(rows), nil
}

// WriteAll stores items in order, assigning each the next id
func (s *MemoryStore) WriteAll(ctx context.Context, items []domain.RemoteItem) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("write all", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range mapper.RemoteListToStorage(items) {
		s.lastID++
		row.ID = s.lastID
		s.items.Set(strconv.FormatInt(row.ID, 10), copyRow(row), gocache.NoExpiration)
	}
	return nil
}

// DeleteAll removes every stored item
func (s *MemoryStore) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("delete all", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Flush()
	return nil
}

// Stats returns store statistics
func (s *MemoryStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"backend":     "memory",
		"total_items": s.items.ItemCount(),
		"last_id":     s.lastID,
	}, nil
}

// Close is a no-op kept for parity with the persistent stores
func (s *MemoryStore) Close() error {
	return nil
}

func copyRow(row domain.StorageItem) domain.StorageItem {
	return domain.StorageItem{
		ID:          row.ID,
		Title:       copyString(row.Title),
		Description: copyString(row.Description),
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
