// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	"errors"

	apperrors "items-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// StatusClientClosedRequest is the non-standard status for a request whose
// caller went away before it finished
const StatusClientClosedRequest = 499

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case apperrors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("Timed out loading items", err)
	case errors.Is(err, context.Canceled):
		return huma.NewError(StatusClientClosedRequest, "Request cancelled before items were loaded", err)
	case apperrors.IsNetwork(err):
		return huma.Error503ServiceUnavailable("Item service unreachable", err)
	case apperrors.IsProtocol(err):
		return huma.Error502BadGateway("Item service returned an error", err)
	case apperrors.IsDecode(err):
		return huma.Error502BadGateway("Item service returned a malformed payload", err)
	case apperrors.IsStorage(err):
		return huma.Error500InternalServerError("Local item store failed", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
