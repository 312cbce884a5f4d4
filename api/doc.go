// Package api provides the HTTP API layer for the Items application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET    /items   cached item list, populated from the item service on first use
//	DELETE /items   clear the local store so the next GET downloads again
//	GET    /stats   repository counters (stats_enabled feature flag)
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewItemHandler(repo, metrics, store, flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "Item service unreachable"
//	}
//
// Network failures map to 503, protocol and decode failures to 502,
// storage failures to 500 and validation failures to 400. A request cancelled
// by its caller gets 499.
package api
