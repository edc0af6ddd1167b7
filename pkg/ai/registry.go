// ABOUTME: Provider registry mapping provider types to client factories
// ABOUTME: Unknown types fail at construction time, never at stream time

package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnsupportedProvider is returned by New for a type with no registered
// factory. This is a configuration error and must surface immediately.
var ErrUnsupportedProvider = errors.New("unsupported AI provider")

// Provider is the one capability every backend implements: submit a prompt
// pair, receive a lazy sequence of text fragments.
type Provider interface {
	// Name returns the human-readable provider name used in error fragments.
	Name() string

	// Type returns the provider's configuration identifier.
	Type() ProviderType

	// Stream initiates a streaming call. The context controls cancellation
	// of the underlying HTTP request; abandoning iteration with a cancelled
	// context releases the network stream.
	Stream(ctx context.Context, req Request) *FragmentStream
}

// Factory constructs a provider client from settings.
type Factory func(s Settings) Provider

var (
	registryMu sync.RWMutex
	registry   = make(map[ProviderType]Factory)
)

// Register installs a factory for the given provider type.
func Register(t ProviderType, f Factory) {
	registryMu.Lock()
	registry[t] = f
	registryMu.Unlock()
}

// New constructs a provider for the settings' type.
func New(s Settings) (Provider, error) {
	registryMu.RLock()
	f, ok := registry[s.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, s.Type)
	}
	return f(s), nil
}

// Registered reports whether a factory exists for the given type.
func Registered(t ProviderType) bool {
	registryMu.RLock()
	_, ok := registry[t]
	registryMu.RUnlock()
	return ok
}
