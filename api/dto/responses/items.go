// ABOUTME: Response DTOs for item endpoints
// ABOUTME: Absent titles and descriptions are rendered as empty strings

package responses

// ItemResponse represents a stored item in API responses
type ItemResponse struct {
	ID          int64  `json:"id" doc:"Identifier assigned by the local store"`
	Title       string `json:"title" doc:"Item title, empty when absent"`
	Description string `json:"description" doc:"Item description, empty when absent"`
}

// ItemListResponse is the body of GET /items
type ItemListResponse struct {
	Status string         `json:"status" doc:"Always 'success' for a 200 response"`
	Count  int            `json:"count" doc:"Number of items"`
	Items  []ItemResponse `json:"items" doc:"Items in store order"`
}

// StatsResponse is the body of GET /stats
type StatsResponse struct {
	Hits        int64                  `json:"hits" doc:"Requests served from an already populated store"`
	Misses      int64                  `json:"misses" doc:"Requests that found the store empty"`
	Populations int64                  `json:"populations" doc:"Successful store populations"`
	Failures    int64                  `json:"failures" doc:"Requests that returned an error"`
	Store       map[string]interface{} `json:"store,omitempty" doc:"Backend specific store statistics"`
}
