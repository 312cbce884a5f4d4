package items_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-app-api/core/interfaces"
	"items-app-api/core/items"
	"items-app-api/infrastructure/cache/sqlite"
	stdhttp "items-app-api/infrastructure/http/standard"
	"items-app-api/infrastructure/remote"
)

const itemsJSON = `[
	{"title": "Item 1", "description": "Description 1"},
	{"title": "Item 2", "description": "Description 2"}
]`

func newSQLiteRepository(t *testing.T, handler http.HandlerFunc) (*items.Repository, *sqlite.Client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := sqlite.NewSQLiteStore(filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	source, err := remote.NewItemSource(stdhttp.NewStandardHTTPClient(5*time.Second), server.URL, "/feeds/items.json")
	require.NoError(t, err)

	repo := items.NewRepository(interfaces.Dependencies{
		Store:  store,
		Source: source,
	})
	return repo, store
}

func TestFetchItemList_SQLiteEndToEnd(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newSQLiteRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/feeds/items.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(itemsJSON))
	})

	ctx := context.Background()
	list, err := repo.FetchItemList(ctx).Unwrap()
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	assert.Equal(t, int64(1), list.Items[0].ID)
	assert.Equal(t, "Item 1", list.Items[0].TitleOrEmpty())
	assert.Equal(t, "Description 1", list.Items[0].DescriptionOrEmpty())
	assert.Equal(t, int64(2), list.Items[1].ID)
	assert.Equal(t, "Item 2", list.Items[1].TitleOrEmpty())
	assert.Equal(t, "Description 2", list.Items[1].DescriptionOrEmpty())

	again, err := repo.FetchItemList(ctx).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, list, again)
	assert.Equal(t, int32(1), calls.Load(), "a populated store must not hit the remote again")
}

func TestFetchItemList_SQLiteConcurrentCallersPopulateOnce(t *testing.T) {
	var calls atomic.Int32
	repo, store := newSQLiteRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		w.Write([]byte(itemsJSON))
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, repo.FetchItemList(context.Background()).IsSuccess())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())

	stored, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestFetchItemList_SQLiteRemoteFailureLeavesStoreEmpty(t *testing.T) {
	repo, store := newSQLiteRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	})

	outcome := repo.FetchItemList(context.Background())
	require.True(t, outcome.IsError())

	has, err := store.HasData(context.Background())
	require.NoError(t, err)
	assert.False(t, has)
}
