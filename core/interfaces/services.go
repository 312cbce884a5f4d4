// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the remote item source contract consumed by the repository

package interfaces

import (
	"context"

	"items-app-api/core/domain"
)

// ItemSource fetches the raw item list from the remote item service.
// Implementations perform exactly one round trip per call, without retries,
// and fail with *errors.NetworkError, *errors.ProtocolError or *errors.DecodeError.
type ItemSource interface {
	FetchAll(ctx context.Context) ([]domain.RemoteItem, error)
}
