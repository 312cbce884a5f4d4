// ABOUTME: Three-state view model contract (loading, success, error) for item list screens
// ABOUTME: FromOutcome converts a repository outcome into the state a renderer consumes

package presentation

import (
	"items-app-api/core/domain"
	"items-app-api/core/result"
)

// DefaultErrorMessage is shown when an Error outcome carries no message
const DefaultErrorMessage = "Something went wrong while loading items."

// Status is the variant of a UiState
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

// String returns the lower-case status name
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ListItemState is one row of the item list as rendered
type ListItemState struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UiState is the state published to renderers.
// Items is only set for StatusSuccess and Message only for StatusError.
type UiState struct {
	Status  Status          `json:"-"`
	Items   []ListItemState `json:"items,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Loading returns the loading state
func Loading() UiState {
	return UiState{Status: StatusLoading}
}

// Success returns a success state holding items
func Success(items []ListItemState) UiState {
	if items == nil {
		items = []ListItemState{}
	}
	return UiState{Status: StatusSuccess, Items: items}
}

// Failed returns an error state. An empty message falls back to DefaultErrorMessage.
func Failed(message string) UiState {
	if message == "" {
		message = DefaultErrorMessage
	}
	return UiState{Status: StatusError, Message: message}
}

// FromOutcome maps a repository outcome to Success or Error state.
// Absent titles and descriptions are rendered as empty strings.
func FromOutcome(outcome result.Outcome[domain.ItemListResult]) UiState {
	if failure, ok := outcome.Failure(); ok {
		return Failed(failure.Message)
	}

	value, _ := outcome.Value()
	items := make([]ListItemState, 0, len(value.Items))
	for _, item := range value.Items {
		items = append(items, ListItemState{
			ID:          item.ID,
			Title:       item.TitleOrEmpty(),
			Description: item.DescriptionOrEmpty(),
		})
	}
	return Success(items)
}
