// Package core contains the business logic for the Items API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Item models for the remote payload, the stored row and the entity
// - items: The populate-once repository and its metrics hooks
// - mapper: Conversions between the item models
// - presentation: Loading/success/error view model for item list screens
// - result: The Outcome type returned by the repository
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (store, source, HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "items-app-api/core/interfaces"
//	    "items-app-api/core/items"
//	)
//
//	repo := items.NewRepository(interfaces.Dependencies{
//	    Store:  myStore,  // implements interfaces.ItemStore
//	    Source: mySource, // implements interfaces.ItemSource
//	    Logger: myLogger, // implements interfaces.Logger
//	})
//
//	outcome := repo.FetchItemList(ctx)
//	if list, ok := outcome.Value(); ok {
//	    // render list.Items
//	}
package core
