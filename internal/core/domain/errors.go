package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. The HTTP layer maps each of these
// to a deterministic status code in internal/api/error_handler.go.
var (
	ErrMissingFields      = errors.New("required fields missing")
	ErrUserExists         = errors.New("email or username already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrMissingIngredients = errors.New("ingredients parameter is required")
	ErrInvalidRecipeID    = errors.New("invalid recipe id")
	ErrNoRecipeFound      = errors.New("no recipe found")
	ErrProviderKeyMissing = errors.New("recipe provider api key is not configured")

	ErrMissingTitle      = errors.New("title is required")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite with this title already exists")
)

// UpstreamError reports a failure from the external recipe provider. It keeps
// the provider's HTTP status when one was received so the boundary can pass
// it through; StatusCode is 0 for transport-level failures.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("recipe provider unreachable: %s", e.Message)
	}
	return fmt.Sprintf("recipe provider returned %d: %s", e.StatusCode, e.Message)
}
