package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProviderConfigured indicates the manager was built without a provider
	ErrNoProviderConfigured = errors.New("no provider configured")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
