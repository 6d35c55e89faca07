// Package convert dispatches document conversions. Registry maps format
// pairs to converter factories and System is the facade callers use to
// convert content.
package convert

import (
	"sort"
	"sync"

	"github.com/fwojciec/docconv"
)

var _ docconv.ConverterRegistry = (*Registry)(nil)

// Registry maps normalized format pairs to converter factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[docconv.FormatPair]docconv.ConverterFactory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[docconv.FormatPair]docconv.ConverterFactory),
	}
}

// Register adds a factory for the source to target conversion.
// If a factory is already registered for the pair, it is replaced.
func (r *Registry) Register(source, target string, factory docconv.ConverterFactory) {
	pair := docconv.NewFormatPair(source, target)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[pair] = factory
}

// Resolve builds a new converter for the source to target conversion.
// The returned error keeps the format names as given, not normalized.
func (r *Registry) Resolve(source, target string) (docconv.Converter, error) {
	pair := docconv.NewFormatPair(source, target)

	r.mu.RLock()
	factory, ok := r.factories[pair]
	r.mu.RUnlock()

	if !ok || factory == nil {
		return nil, &docconv.UnsupportedConversionError{Source: source, Target: target}
	}
	return factory(), nil
}

// List returns all registered pairs sorted by key.
func (r *Registry) List() []docconv.FormatPair {
	r.mu.RLock()
	pairs := make([]docconv.FormatPair, 0, len(r.factories))
	for p := range r.factories {
		pairs = append(pairs, p)
	}
	r.mu.RUnlock()

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key() < pairs[j].Key()
	})
	return pairs
}
