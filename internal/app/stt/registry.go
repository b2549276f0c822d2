package stt

import (
	"fmt"
	"sort"
	"sync"

	"voicenote/internal/config"
)

// CreatorFunc builds a Transcriber from the runtime configuration.
type CreatorFunc func(cfg *config.Config) (Transcriber, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]CreatorFunc)
)

// Register registers a recognizer provider under a name. Providers call
// this from init(); duplicate registration is a programming error.
func Register(name string, creator CreatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("stt: provider name cannot be empty")
	}
	if creator == nil {
		panic("stt: provider creator cannot be nil")
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("stt: provider %q already registered", name))
	}

	registry[name] = creator
}

// New creates the recognizer selected by cfg.STTProvider.
func New(cfg *config.Config) (Transcriber, error) {
	registryMu.RLock()
	creator, exists := registry[cfg.STTProvider]
	registryMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown stt provider %q (registered: %v)", cfg.STTProvider, ListProviders())
	}

	return creator(cfg)
}

// ListProviders returns the registered provider names, sorted.
func ListProviders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
