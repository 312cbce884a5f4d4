package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "items-app-api/core/errors"
	"items-app-api/infrastructure/http/standard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feeds/items.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newSource(t *testing.T, baseURL string) *ItemSource {
	t.Helper()
	source, err := NewItemSource(standard.NewStandardHTTPClient(5*time.Second), baseURL, "feeds/items.json")
	require.NoError(t, err)
	return source
}

func TestNewItemSource_JoinsBaseAndPath(t *testing.T) {
	client := standard.NewStandardHTTPClient(time.Second)

	source, err := NewItemSource(client, "https://raw.githubusercontent.com/", "owner/repo/main/test.json")
	require.NoError(t, err)
	assert.Equal(t, "https://raw.githubusercontent.com/owner/repo/main/test.json", source.Endpoint())

	source, err = NewItemSource(client, "https://example.com/items.json", "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/items.json", source.Endpoint())
}

func TestNewItemSource_Validation(t *testing.T) {
	_, err := NewItemSource(nil, "https://example.com", "items.json")
	assert.True(t, apperrors.IsValidation(err))

	_, err = NewItemSource(standard.NewStandardHTTPClient(time.Second), "not a url", "items.json")
	assert.True(t, apperrors.IsValidation(err))
}

func TestFetchAll_DecodesInPayloadOrder(t *testing.T) {
	server := newServer(t, http.StatusOK, `[
		{"title": "Item 1", "description": "Description 1"},
		{"title": "Item 2"},
		{"description": "Description 3", "extra": true},
		{}
	]`)

	items, err := newSource(t, server.URL).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "Item 1", *items[0].Title)
	assert.Equal(t, "Description 1", *items[0].Description)
	assert.Equal(t, "Item 2", *items[1].Title)
	assert.Nil(t, items[1].Description)
	assert.Nil(t, items[2].Title)
	assert.Equal(t, "Description 3", *items[2].Description)
	assert.Nil(t, items[3].Title)
	assert.Nil(t, items[3].Description)
}

func TestFetchAll_EmptyArray(t *testing.T) {
	server := newServer(t, http.StatusOK, `[]`)

	items, err := newSource(t, server.URL).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFetchAll_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, `{"error":"missing"}`, apperrors.IsProtocol},
		{"server error", http.StatusInternalServerError, ``, apperrors.IsProtocol},
		{"malformed json", http.StatusOK, `[{"title": `, apperrors.IsDecode},
		{"object instead of array", http.StatusOK, `{"title":"Item 1"}`, apperrors.IsDecode},
		{"wrong field type", http.StatusOK, `[{"title": 42}]`, apperrors.IsDecode},
		{"null payload", http.StatusOK, `null`, apperrors.IsDecode},
		{"empty body", http.StatusOK, ``, apperrors.IsDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.status, tt.body)

			items, err := newSource(t, server.URL).FetchAll(context.Background())
			require.Error(t, err)
			assert.Nil(t, items)
			assert.True(t, tt.check(err), "unexpected classification: %v", err)
		})
	}
}

func TestFetchAll_ProtocolErrorCarriesStatus(t *testing.T) {
	server := newServer(t, http.StatusServiceUnavailable, ``)

	_, err := newSource(t, server.URL).FetchAll(context.Background())

	var protoErr *apperrors.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, http.StatusServiceUnavailable, protoErr.StatusCode)
}

func TestFetchAll_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newSource(t, baseURL).FetchAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
}

func TestFetchAll_CancelledContext(t *testing.T) {
	server := newServer(t, http.StatusOK, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSource(t, server.URL).FetchAll(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
	assert.ErrorIs(t, err, context.Canceled)
}
