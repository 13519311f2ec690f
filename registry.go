package elft

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ExtractorFactory creates an Extractor reading its read-only configuration
// from configDir.
type ExtractorFactory func(configDir string) (Extractor, error)

// SearcherFactory creates a Searcher over the reference database in
// databaseDir.
type SearcherFactory func(configDir, databaseDir string) (Searcher, error)

type implementation struct {
	extractor ExtractorFactory
	searcher  SearcherFactory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*implementation)
)

// RegisterExtractor makes an extractor available under name. It is meant to
// be called from an implementation package's init and panics if factory is
// nil or name already has an extractor.
func RegisterExtractor(name string, factory ExtractorFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("elft: RegisterExtractor factory is nil")
	}
	impl := lookupOrCreate(name)
	if impl.extractor != nil {
		panic("elft: RegisterExtractor called twice for " + name)
	}
	impl.extractor = factory
}

// RegisterSearcher makes a searcher available under name. It panics if
// factory is nil or name already has a searcher.
func RegisterSearcher(name string, factory SearcherFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("elft: RegisterSearcher factory is nil")
	}
	impl := lookupOrCreate(name)
	if impl.searcher != nil {
		panic("elft: RegisterSearcher called twice for " + name)
	}
	impl.searcher = factory
}

func lookupOrCreate(name string) *implementation {
	impl, ok := registry[name]
	if !ok {
		impl = new(implementation)
		registry[name] = impl
	}
	return impl
}

// NewExtractor creates the extractor registered under name.
func NewExtractor(name, configDir string) (Extractor, error) {
	registryMu.RLock()
	impl, ok := registry[name]
	registryMu.RUnlock()

	if !ok || impl.extractor == nil {
		return nil, fmt.Errorf("%w: no extractor named %q", ErrUnknownImplementation, name)
	}
	e, err := impl.extractor(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor %q: %w", name, err)
	}
	return e, nil
}

// NewSearcher creates the searcher registered under name.
func NewSearcher(name, configDir, databaseDir string) (Searcher, error) {
	registryMu.RLock()
	impl, ok := registry[name]
	registryMu.RUnlock()

	if !ok || impl.searcher == nil {
		return nil, fmt.Errorf("%w: no searcher named %q", ErrUnknownImplementation, name)
	}
	s, err := impl.searcher(configDir, databaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create searcher %q: %w", name, err)
	}
	return s, nil
}

// Implementations returns the sorted names of everything registered.
func Implementations() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// unregister is used by tests.
func unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}
