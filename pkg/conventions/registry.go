package conventions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry is a process-wide, insert-only collection of convention
// definitions, indexed by UUID, schema URL, and spec URL. Registration
// normally happens during program initialization; lookups are safe from
// multiple goroutines at any later time.
type Registry struct {
	mu       sync.RWMutex
	byUUID   map[uuid.UUID]Definition
	bySchema map[string]Definition
	bySpec   map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byUUID:   make(map[uuid.UUID]Definition),
		bySchema: make(map[string]Definition),
		bySpec:   make(map[string]Definition),
	}
}

// Register inserts a definition. Registering the identical definition again
// is a no-op, since a convention package may be initialized more than once
// across build configurations. Registering a different definition under an
// already-bound UUID or URL returns ErrDuplicateDefinition.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byUUID[def.UUID]; ok {
		if prev == def {
			return nil
		}
		return fmt.Errorf("%w: uuid %s", ErrDuplicateDefinition, def.UUID)
	}
	if _, ok := r.bySchema[def.SchemaURL]; ok {
		return fmt.Errorf("%w: schema_url %s", ErrDuplicateDefinition, def.SchemaURL)
	}
	if _, ok := r.bySpec[def.SpecURL]; ok {
		return fmt.Errorf("%w: spec_url %s", ErrDuplicateDefinition, def.SpecURL)
	}

	r.byUUID[def.UUID] = def
	r.bySchema[def.SchemaURL] = def
	r.bySpec[def.SpecURL] = def
	return nil
}

// ByUUID looks up a definition by its UUID.
func (r *Registry) ByUUID(id uuid.UUID) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byUUID[id]
	return def, ok
}

// BySchemaURL looks up a definition by its schema URL.
func (r *Registry) BySchemaURL(url string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.bySchema[url]
	return def, ok
}

// BySpecURL looks up a definition by its spec URL.
func (r *Registry) BySpecURL(url string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.bySpec[url]
	return def, ok
}

// Resolve maps a manifest entry back to a registered definition, trying the
// UUID first, then the schema URL, then the spec URL. Unknown entries are
// not an error; the second return value is false.
func (r *Registry) Resolve(entry ManifestEntry) (Definition, bool) {
	if entry.UUID != nil {
		if def, ok := r.ByUUID(*entry.UUID); ok {
			return def, true
		}
	}
	if entry.SchemaURL != "" {
		if def, ok := r.BySchemaURL(entry.SchemaURL); ok {
			return def, true
		}
	}
	if entry.SpecURL != "" {
		if def, ok := r.BySpecURL(entry.SpecURL); ok {
			return def, true
		}
	}
	return Definition{}, false
}

// Definitions returns a snapshot of all registered definitions, ordered by
// name.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]Definition, 0, len(r.byUUID))
	for _, def := range r.byUUID {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// defaultRegistry is populated by convention packages in their init
// functions, the same way database/sql drivers register themselves.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register inserts a definition into the default registry.
func Register(def Definition) error {
	return defaultRegistry.Register(def)
}

// MustRegister inserts a definition into the default registry and panics on
// failure. Intended for init functions of convention packages.
func MustRegister(def Definition) {
	if err := defaultRegistry.Register(def); err != nil {
		panic(fmt.Sprintf("conventions: register %q: %v", def.Name, err))
	}
}
