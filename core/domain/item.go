// ABOUTME: Item domain models for the remote payload, the persisted row and the domain entity
// ABOUTME: Optional fields are pointers so an absent value stays distinguishable from an empty one

package domain

// RemoteItem is one element of the JSON array returned by the item service.
// It has no identity and only lives for the duration of a single fetch.
type RemoteItem struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// StorageItem is the persisted shape of an item (table "items").
type StorageItem struct {
	// ID is assigned by the store on write; zero before persisting
	ID          int64
	Title       *string
	Description *string
}

// Item is the domain entity exposed to callers of the repository
type Item struct {
	ID          int64
	Title       *string
	Description *string
}

// TitleOrEmpty returns the title, or "" when it is absent
func (i Item) TitleOrEmpty() string {
	return valueOrEmpty(i.Title)
}

// DescriptionOrEmpty returns the description, or "" when it is absent
func (i Item) DescriptionOrEmpty() string {
	return valueOrEmpty(i.Description)
}

// ItemListResult is the payload of a successful item list fetch.
// Items are in store order, which is not guaranteed to match remote order.
type ItemListResult struct {
	Items []Item
}

// StringPtr returns a pointer to s. Handy for building optional fields.
func StringPtr(s string) *string {
	return &s
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
