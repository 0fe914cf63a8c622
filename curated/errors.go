package curated

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the client was constructed without an API key.
var ErrMissingAPIKey = errors.New("curated API key is required")

// ConfigError reports a precondition failure detected before any request is
// sent: a missing publication scope or a required record field left empty.
type ConfigError struct {
	Reason string
}

// ErrNoPublication is returned by publication-scoped operations invoked
// before a publication ID was set on the client.
var ErrNoPublication = &ConfigError{Reason: "publication ID has not been set"}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("curated: invalid request configuration: %s", e.Reason)
}

// APIError represents a non-success response from the Curated API.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("curated API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// DeleteResult is the outcome of a delete call. A 404 from the server is a
// normal outcome here, not an error: the resource is simply already gone.
type DeleteResult int

const (
	// DeleteResultUnknown is the zero value, returned alongside an error.
	DeleteResultUnknown DeleteResult = iota
	// Deleted indicates the server removed the resource (204).
	Deleted
	// NotFound indicates the resource did not exist (404).
	NotFound
)

// String returns the string representation of a DeleteResult
func (r DeleteResult) String() string {
	switch r {
	case Deleted:
		return "deleted"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}
