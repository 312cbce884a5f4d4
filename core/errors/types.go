// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies remote and storage failures so they can be normalized at the repository boundary

package errors

import (
	"errors"
	"fmt"
)

// NetworkError represents a transport-level failure reaching the item service
// (no connectivity, DNS, connection reset, cancelled request)
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a reachable item service that answered with a non-success status
type ProtocolError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("item service at %s returned status %d", e.URL, e.StatusCode)
}

// DecodeError represents a payload that does not match the expected shape
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed payload from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StorageError represents a failed local persistence operation
type StorageError struct {
	// Op names the store operation, e.g. "has data", "read all", "write all"
	Op  string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause
func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsProtocol checks if an error is a ProtocolError
func IsProtocol(err error) bool {
	var protoErr *ProtocolError
	return errors.As(err, &protoErr)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewStorageError wraps err as a StorageError for the given operation.
// Returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
