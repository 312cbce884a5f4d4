// ABOUTME: Mappers between the remote wire shape, the storage row and the domain item
// ABOUTME: Pure functions; title and description are carried over untouched

package mapper

import "items-app-api/core/domain"

// RemoteToStorage converts a remote item into a storage row.
// The ID is left at zero so the store can assign it.
func RemoteToStorage(item domain.RemoteItem) domain.StorageItem {
	return domain.StorageItem{
		ID:          0,
		Title:       item.Title,
		Description: item.Description,
	}
}

// StorageToItem converts a storage row into a domain item
func StorageToItem(item domain.StorageItem) domain.Item {
	return domain.Item{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
	}
}

// RemoteListToStorage converts a remote payload into storage rows, keeping order
func RemoteListToStorage(items []domain.RemoteItem) []domain.StorageItem {
	rows := make([]domain.StorageItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, RemoteToStorage(item))
	}
	return rows
}

// StorageListToItems converts storage rows into domain items, keeping order.
// Never returns nil so an empty store reads back as an empty list.
func StorageListToItems(rows []domain.StorageItem) []domain.Item {
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, StorageToItem(row))
	}
	return items
}
