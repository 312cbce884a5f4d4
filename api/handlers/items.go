// ABOUTME: Item handlers for the Huma API
// ABOUTME: Serves the cached item list, store reset and repository statistics

package handlers

import (
	"context"
	"net/http"

	"items-app-api/api/dto/mappers"
	"items-app-api/api/dto/responses"
	"items-app-api/core/domain"
	"items-app-api/core/items"
	"items-app-api/core/result"
	"items-app-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// ItemRepository is the part of the repository the handlers need
type ItemRepository interface {
	FetchItemList(ctx context.Context) result.Outcome[domain.ItemListResult]
	Reset(ctx context.Context) error
}

// StatsSource provides repository counters
type StatsSource interface {
	Snapshot() items.Stats
}

// StoreStatsSource is implemented by stores that can describe themselves
type StoreStatsSource interface {
	Stats(ctx context.Context) (map[string]interface{}, error)
}

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	repo       ItemRepository
	stats      StatsSource
	storeStats StoreStatsSource
	flags      featureflags.Manager
}

// NewItemHandler creates a new item handler. stats, storeStats and flags may be nil.
func NewItemHandler(repo ItemRepository, stats StatsSource, storeStats StoreStatsSource, flags featureflags.Manager) *ItemHandler {
	return &ItemHandler{
		repo:       repo,
		stats:      stats,
		storeStats: storeStats,
		flags:      flags,
	}
}

// RegisterRoutes registers all item-related routes
func (h *ItemHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listItems",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List items",
		Description: "Returns the cached item list, downloading it from the item service on first use",
		Tags:        []string{"Items"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID:   "resetItems",
		Method:        http.MethodDelete,
		Path:          "/items",
		Summary:       "Clear the item cache",
		Description:   "Deletes every cached item so the next list request downloads them again",
		Tags:          []string{"Items"},
		DefaultStatus: http.StatusNoContent,
	}, h.ResetItems)

	huma.Register(api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Repository statistics",
		Description: "Cache hit, miss, population and failure counters. Requires the stats_enabled feature flag.",
		Tags:        []string{"Items"},
	}, h.GetStats)
}

// ListItemsOutput defines the output for the ListItems operation
type ListItemsOutput struct {
	Body responses.ItemListResponse
}

// ListItems handles the GET /items endpoint
func (h *ItemHandler) ListItems(ctx context.Context, input *struct{}) (*ListItemsOutput, error) {
	outcome := h.repo.FetchItemList(ctx)

	list, err := outcome.Unwrap()
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListItemsOutput{Body: mappers.ToItemListResponse(list)}, nil
}

// ResetItemsOutput is empty; the operation answers 204
type ResetItemsOutput struct{}

// ResetItems handles the DELETE /items endpoint
func (h *ItemHandler) ResetItems(ctx context.Context, input *struct{}) (*ResetItemsOutput, error) {
	if err := h.repo.Reset(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return &ResetItemsOutput{}, nil
}

// GetStatsOutput defines the output for the GetStats operation
type GetStatsOutput struct {
	Body responses.StatsResponse
}

// GetStats handles the GET /stats endpoint
func (h *ItemHandler) GetStats(ctx context.Context, input *struct{}) (*GetStatsOutput, error) {
	flags := h.flags
	if flags == nil {
		flags = featureflags.FromContext(ctx)
	}
	if !flags.IsEnabled(ctx, featureflags.StatsEnabled) || h.stats == nil {
		return nil, huma.Error404NotFound("stats are disabled")
	}

	var store map[string]interface{}
	if h.storeStats != nil {
		s, err := h.storeStats.Stats(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		store = s
	}

	return &GetStatsOutput{Body: mappers.ToStatsResponse(h.stats.Snapshot(), store)}, nil
}
