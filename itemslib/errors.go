// ABOUTME: Error classification for the Items library
// ABOUTME: Maps internal failures onto a small set of stable error types for library callers

package itemslib

import (
	"context"
	"errors"

	apperrors "items-app-api/core/errors"
	"items-app-api/core/result"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNone is returned for a nil error
	ErrorTypeNone ErrorType = ""

	// ErrorTypeValidation indicates invalid client configuration
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates the item service could not be reached
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeProtocol indicates the item service answered with a non-success status
	ErrorTypeProtocol ErrorType = "protocol"

	// ErrorTypeParsing indicates a malformed item payload
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeStorage indicates the local store failed
	ErrorTypeStorage ErrorType = "storage"

	// ErrorTypeCanceled indicates the caller's context ended first
	ErrorTypeCanceled ErrorType = "canceled"

	// ErrorTypeInternal covers everything else
	ErrorTypeInternal ErrorType = "internal"
)

// ErrUnknown is the cause of an Error outcome that carried neither message nor cause
var ErrUnknown = result.ErrUnknown

// Classify returns the ErrorType of err
func Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ErrorTypeNone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeCanceled
	case apperrors.IsValidation(err):
		return ErrorTypeValidation
	case apperrors.IsNetwork(err):
		return ErrorTypeNetwork
	case apperrors.IsProtocol(err):
		return ErrorTypeProtocol
	case apperrors.IsDecode(err):
		return ErrorTypeParsing
	case apperrors.IsStorage(err):
		return ErrorTypeStorage
	default:
		return ErrorTypeInternal
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return Classify(err) == ErrorTypeValidation
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return Classify(err) == ErrorTypeNetwork
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return Classify(err) == ErrorTypeParsing
}

// IsStorageError checks if an error is a storage error
func IsStorageError(err error) bool {
	return Classify(err) == ErrorTypeStorage
}
