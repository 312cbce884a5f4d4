// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Store is the local item persistence
	Store ItemStore

	// Source fetches items from the remote item service
	Source ItemSource

	// Logger provides structured logging
	Logger Logger
}
