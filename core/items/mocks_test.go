package items

import (
	"context"
	"sync"

	"items-app-api/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of interfaces.ItemStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) HasData(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) ReadAll(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *MockStore) WriteAll(ctx context.Context, items []domain.RemoteItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockStore) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSource is a testify mock of interfaces.ItemSource
type MockSource struct {
	mock.Mock
}

func (m *MockSource) FetchAll(ctx context.Context) ([]domain.RemoteItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.RemoteItem)
	return items, args.Error(1)
}

// fakeStore is a small thread-safe store used by the concurrency tests
type fakeStore struct {
	mu     sync.Mutex
	rows   []domain.StorageItem
	nextID int64
	writes int
}

func (s *fakeStore) HasData(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows) > 0, nil
}

func (s *fakeStore) ReadAll(ctx context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.Item, 0, len(s.rows))
	for _, row := range s.rows {
		items = append(items, domain.Item{ID: row.ID, Title: row.Title, Description: row.Description})
	}
	return items, nil
}

func (s *fakeStore) WriteAll(ctx context.Context, items []domain.RemoteItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	for _, item := range items {
		s.nextID++
		s.rows = append(s.rows, domain.StorageItem{ID: s.nextID, Title: item.Title, Description: item.Description})
	}
	return nil
}

func (s *fakeStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// mockLogger is a func-field implementation of interfaces.Logger
type mockLogger struct {
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
