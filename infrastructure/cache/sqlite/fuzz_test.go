package sqlite

import (
	"context"
	"testing"

	"items-app-api/core/domain"
)

// FuzzWriteAllRoundTrip checks that arbitrary text is stored and read back unchanged
func FuzzWriteAllRoundTrip(f *testing.F) {
	f.Add("Item 1", "Description 1")
	f.Add("", "")
	f.Add("title'; DROP TABLE items;--", "tab\tnewline\n")
	f.Add("日本語", "emoji 🚀")

	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		f.Fatal(err)
	}
	defer store.Close()

	f.Fuzz(func(t *testing.T, title, description string) {
		ctx := context.Background()
		if err := store.DeleteAll(ctx); err != nil {
			t.Fatal(err)
		}

		err := store.WriteAll(ctx, []domain.RemoteItem{{Title: &title, Description: &description}})
		if err != nil {
			t.Fatalf("WriteAll() error = %v", err)
		}

		items, err := store.ReadAll(ctx)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("ReadAll() returned %d items, want 1", len(items))
		}
		if items[0].Title == nil || *items[0].Title != title {
			t.Errorf("title mismatch: got %v, want %q", items[0].Title, title)
		}
		if items[0].Description == nil || *items[0].Description != description {
			t.Errorf("description mismatch: got %v, want %q", items[0].Description, description)
		}
	})
}
