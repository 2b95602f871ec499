package conventions

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Builder incrementally assembles a fresh attributes map from typed
// convention payloads and arbitrary key/value pairs, and synthesizes the
// zarr_conventions manifest to match. A failed Add leaves the builder
// usable; a successful Build consumes it.
// layout identifies which representation a convention was added under.
type layout int

const (
	layoutNested layout = iota + 1
	layoutPrefixed
)

type Builder struct {
	attrs   Attributes
	defs    []Definition         // distinct conventions, in addition order
	layouts map[uuid.UUID]layout // representation chosen per convention
	owners  map[string]uuid.UUID // convention-written keys by owner
	built   bool

	includeUUID        bool
	includeSchemaURL   bool
	includeSpecURL     bool
	includeName        bool
	includeDescription bool
}

// NewBuilder returns a builder that copies every definition field into the
// manifest entries it writes.
func NewBuilder() *Builder {
	return &Builder{
		attrs:              Attributes{},
		layouts:            make(map[uuid.UUID]layout),
		owners:             make(map[string]uuid.UUID),
		includeUUID:        true,
		includeSchemaURL:   true,
		includeSpecURL:     true,
		includeName:        true,
		includeDescription: true,
	}
}

// IncludeUUID controls whether manifest entries carry the convention UUID.
func (b *Builder) IncludeUUID(enable bool) *Builder {
	b.includeUUID = enable
	return b
}

// IncludeSchemaURL controls whether manifest entries carry the schema URL.
func (b *Builder) IncludeSchemaURL(enable bool) *Builder {
	b.includeSchemaURL = enable
	return b
}

// IncludeSpecURL controls whether manifest entries carry the spec URL.
func (b *Builder) IncludeSpecURL(enable bool) *Builder {
	b.includeSpecURL = enable
	return b
}

// IncludeName controls whether manifest entries carry the convention name.
func (b *Builder) IncludeName(enable bool) *Builder {
	b.includeName = enable
	return b
}

// IncludeDescription controls whether manifest entries carry the
// description.
func (b *Builder) IncludeDescription(enable bool) *Builder {
	b.includeDescription = enable
	return b
}

// AddNested serializes v and writes it under its nested key, recording the
// convention for the manifest. Returns ErrUnsupportedLayout when v does not
// implement Nested, ErrInvalidBuilderConfiguration when the manifest entry
// to be written would carry no identifier, and ErrKeyCollision when the key
// is already occupied by an unrelated attribute or another convention.
// Re-adding the same convention in the same form overwrites its previous
// payload; adding it in the other form returns ErrRepresentationConflict,
// because a document carrying both forms would be unreadable.
func (b *Builder) AddNested(v Convention) error {
	if b.built {
		return ErrBuilderConsumed
	}
	nested, ok := v.(Nested)
	if !ok {
		return fmt.Errorf("%w: %q has no nested key", ErrUnsupportedLayout, v.Definition().Name)
	}
	if err := b.checkConfiguration(); err != nil {
		return err
	}

	def := v.Definition()
	if prev, ok := b.layouts[def.UUID]; ok && prev != layoutNested {
		return fmt.Errorf("%q already added in prefixed form: %w", def.Name, ErrRepresentationConflict)
	}
	key := nested.NestedKey()
	if err := b.claim(key, def.UUID); err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", def.Name, err)
	}

	b.attrs[key] = raw
	b.owners[key] = def.UUID
	b.record(def, layoutNested)
	return nil
}

// AddPrefixed serializes v, flattens its top-level fields, and writes each
// as prefix+field, recording the convention for the manifest. The payload
// must serialize to a JSON object. A convention already added in nested
// form returns ErrRepresentationConflict. Collision and configuration
// failures leave the builder unchanged.
func (b *Builder) AddPrefixed(v Convention) error {
	if b.built {
		return ErrBuilderConsumed
	}
	prefixed, ok := v.(Prefixed)
	if !ok {
		return fmt.Errorf("%w: %q has no key prefix", ErrUnsupportedLayout, v.Definition().Name)
	}
	if err := b.checkConfiguration(); err != nil {
		return err
	}

	def := v.Definition()
	if prev, ok := b.layouts[def.UUID]; ok && prev != layoutPrefixed {
		return fmt.Errorf("%q already added in nested form: %w", def.Name, ErrRepresentationConflict)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", def.Name, err)
	}
	var fields Attributes
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %q", ErrValueNotObject, def.Name)
	}

	prefix := prefixed.KeyPrefix()
	staged := make(Attributes, len(fields))
	for name, value := range fields {
		key := prefix + name
		if err := b.claim(key, def.UUID); err != nil {
			return err
		}
		staged[key] = value
	}

	// Drop keys from an earlier Add of the same convention whose fields
	// are no longer set.
	for key, owner := range b.owners {
		if owner == def.UUID && len(key) > len(prefix) && key[:len(prefix)] == prefix {
			if _, kept := staged[key]; !kept {
				delete(b.attrs, key)
				delete(b.owners, key)
			}
		}
	}
	for key, value := range staged {
		b.attrs[key] = value
		b.owners[key] = def.UUID
	}
	b.record(def, layoutPrefixed)
	return nil
}

// AddAttribute writes an arbitrary untyped attribute. The key must not be
// the reserved manifest key and must not already be occupied.
func (b *Builder) AddAttribute(key string, value any) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if key == ManifestKey {
		return fmt.Errorf("%w: %q is reserved", ErrKeyCollision, key)
	}
	if _, ok := b.attrs[key]; ok {
		return fmt.Errorf("%w: %q", ErrKeyCollision, key)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal attribute %q: %w", key, err)
	}
	b.attrs[key] = raw
	return nil
}

// Build finalizes the document: the accumulated attributes plus a
// zarr_conventions manifest with one entry per distinct convention, in
// addition order. The builder cannot be reused after a successful Build.
func (b *Builder) Build() (Attributes, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	if len(b.defs) > 0 {
		if err := b.checkConfiguration(); err != nil {
			return nil, err
		}
		entries := make([]ManifestEntry, 0, len(b.defs))
		for _, def := range b.defs {
			entry := b.manifestEntry(def)
			if err := entry.Validate(); err != nil {
				return nil, fmt.Errorf("convention %q: %w", def.Name, err)
			}
			entries = append(entries, entry)
		}
		raw, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", ManifestKey, err)
		}
		b.attrs[ManifestKey] = raw
	}

	b.built = true
	return b.attrs, nil
}

// checkConfiguration rejects a configuration under which written manifest
// entries would carry none of the three identifying fields.
func (b *Builder) checkConfiguration() error {
	if !b.includeUUID && !b.includeSchemaURL && !b.includeSpecURL {
		return ErrInvalidBuilderConfiguration
	}
	return nil
}

// claim verifies that a convention may write the given key: the key must be
// unreserved and either free or previously written by the same convention.
func (b *Builder) claim(key string, owner uuid.UUID) error {
	if key == ManifestKey {
		return fmt.Errorf("%w: %q is reserved", ErrKeyCollision, key)
	}
	if prev, ok := b.owners[key]; ok {
		if prev != owner {
			return fmt.Errorf("%w: %q written by another convention", ErrKeyCollision, key)
		}
		return nil
	}
	if _, ok := b.attrs[key]; ok {
		return fmt.Errorf("%w: %q", ErrKeyCollision, key)
	}
	return nil
}

// record notes a convention for the manifest, once per distinct UUID, and
// remembers which form it was written in.
func (b *Builder) record(def Definition, l layout) {
	if _, ok := b.layouts[def.UUID]; !ok {
		b.defs = append(b.defs, def)
	}
	b.layouts[def.UUID] = l
}

// manifestEntry projects a definition through the include flags.
func (b *Builder) manifestEntry(def Definition) ManifestEntry {
	var entry ManifestEntry
	if b.includeUUID {
		id := def.UUID
		entry.UUID = &id
	}
	if b.includeSchemaURL {
		entry.SchemaURL = def.SchemaURL
	}
	if b.includeSpecURL {
		entry.SpecURL = def.SpecURL
	}
	if b.includeName {
		entry.Name = def.Name
	}
	if b.includeDescription {
		entry.Description = def.Description
	}
	return entry
}
