package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
)

// ErrUserNotFound and ErrRoleNotFound both match errors.Is(err, ErrNotFound).
var (
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrRoleNotFound = fmt.Errorf("role %w", ErrNotFound)
)

// UpstreamStatusError is returned when the catalog answered with a 4xx/5xx status.
type UpstreamStatusError struct {
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("HTTP status error: %d", e.Status)
}

// UpstreamUnavailableError is returned when the catalog could not be reached
// or its answer could not be read.
type UpstreamUnavailableError struct {
	Message string
}

func (e *UpstreamUnavailableError) Error() string {
	return "Request error: " + e.Message
}
