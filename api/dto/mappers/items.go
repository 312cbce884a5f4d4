// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"items-app-api/api/dto/responses"
	"items-app-api/core/domain"
	"items-app-api/core/items"
)

// ToItemResponse converts a domain Item to an ItemResponse DTO
func ToItemResponse(item domain.Item) responses.ItemResponse {
	return responses.ItemResponse{
		ID:          item.ID,
		Title:       item.TitleOrEmpty(),
		Description: item.DescriptionOrEmpty(),
	}
}

// ToItemListResponse converts a repository result to the list response
func ToItemListResponse(result domain.ItemListResult) responses.ItemListResponse {
	out := responses.ItemListResponse{
		Status: "success",
		Count:  len(result.Items),
		Items:  make([]responses.ItemResponse, 0, len(result.Items)),
	}

	for _, item := range result.Items {
		out.Items = append(out.Items, ToItemResponse(item))
	}

	return out
}

// ToStatsResponse converts counter and store statistics to the stats response
func ToStatsResponse(stats items.Stats, store map[string]interface{}) responses.StatsResponse {
	return responses.StatsResponse{
		Hits:        stats.Hits,
		Misses:      stats.Misses,
		Populations: stats.Populations,
		Failures:    stats.Failures,
		Store:       store,
	}
}
