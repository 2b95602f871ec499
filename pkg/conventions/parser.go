package conventions

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Parser reads conventional and unstructured metadata out of an existing
// attributes map. The manifest is decoded and validated up front; payload
// presence is always determined from the actual attribute keys, because a
// manifest entry may reference a convention whose data keys were stripped
// by an intermediate tool.
type Parser struct {
	attrs    Attributes
	manifest []ManifestEntry
}

// NewParser wraps an attributes map. It fails when the zarr_conventions key
// exists but is not a sequence of well-formed manifest entries; an entry
// with none of the identifying fields set is an error, not silently
// dropped.
func NewParser(attrs Attributes) (*Parser, error) {
	p := &Parser{attrs: attrs}

	raw, ok := attrs[ManifestKey]
	if !ok {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p.manifest); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", ManifestKey, ErrMalformedManifestEntry, err)
	}
	for i, entry := range p.manifest {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", ManifestKey, i, err)
		}
	}
	return p, nil
}

// ParseJSON decodes a serialized attributes object and wraps it in a
// Parser.
func ParseJSON(data []byte) (*Parser, error) {
	var attrs Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return NewParser(attrs)
}

// ParseNested decodes the convention's nested payload into dst, which must
// be a pointer to the convention type. Returns false when the nested key is
// absent. A present value that does not deserialize as dst wraps
// ErrDecodeMismatch.
func (p *Parser) ParseNested(dst Nested) (bool, error) {
	key := dst.NestedKey()
	raw, ok := p.attrs[key]
	if !ok {
		return false, nil
	}
	if isNull(raw) {
		return false, fmt.Errorf("nested key %q: %w: null payload", key, ErrDecodeMismatch)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("nested key %q: %w: %v", key, ErrDecodeMismatch, err)
	}
	return true, nil
}

// ParsePrefixed decodes the convention's prefixed payload into dst, which
// must be a pointer to the convention type. Returns false when no attribute
// key carries the prefix.
func (p *Parser) ParsePrefixed(dst Prefixed) (bool, error) {
	prefix := dst.KeyPrefix()
	fields, ok := collectPrefixed(prefix, p.attrs)
	if !ok {
		return false, nil
	}
	for name, v := range fields {
		if isNull(v) {
			return false, fmt.Errorf("key %q: %w: null value", prefix+name, ErrDecodeMismatch)
		}
	}
	obj, err := json.Marshal(fields)
	if err != nil {
		return false, fmt.Errorf("prefix %q: %w", prefix, err)
	}
	if err := json.Unmarshal(obj, dst); err != nil {
		return false, fmt.Errorf("prefix %q: %w: %v", prefix, ErrDecodeMismatch, err)
	}
	return true, nil
}

// Parse decodes the convention into dst using whichever of its declared
// layouts is actually present in the document. When both forms are present
// at once it returns ErrRepresentationConflict rather than preferring one;
// when neither is present it returns false. A dst implementing neither
// layout returns ErrUnsupportedLayout.
func (p *Parser) Parse(dst Convention) (bool, error) {
	nested, canNest := dst.(Nested)
	prefixed, canPrefix := dst.(Prefixed)
	if !canNest && !canPrefix {
		return false, fmt.Errorf("%w: %q declares no layout", ErrUnsupportedLayout, dst.Definition().Name)
	}

	var nestedPresent, prefixedPresent bool
	if canNest {
		_, nestedPresent = p.attrs[nested.NestedKey()]
	}
	if canPrefix {
		prefixedPresent = hasPrefixed(prefixed.KeyPrefix(), p.attrs)
	}

	switch {
	case nestedPresent && prefixedPresent:
		return false, fmt.Errorf("%q: %w", dst.Definition().Name, ErrRepresentationConflict)
	case nestedPresent:
		return p.ParseNested(nested)
	case prefixedPresent:
		return p.ParsePrefixed(prefixed)
	default:
		return false, nil
	}
}

// Get decodes an arbitrary top-level attribute into dst. Returns false when
// the key is absent; a present value of the wrong shape wraps
// ErrDecodeMismatch.
func (p *Parser) Get(key string, dst any) (bool, error) {
	raw, ok := p.attrs[key]
	if !ok {
		return false, nil
	}
	if isNull(raw) {
		return false, fmt.Errorf("key %q: %w: null value", key, ErrDecodeMismatch)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("key %q: %w: %v", key, ErrDecodeMismatch, err)
	}
	return true, nil
}

// Raw returns the undecoded value of a top-level attribute.
func (p *Parser) Raw(key string) (json.RawMessage, bool) {
	raw, ok := p.attrs[key]
	return raw, ok
}

// Keys returns all top-level attribute keys in sorted order, including the
// manifest key when present.
func (p *Parser) Keys() []string {
	keys := make([]string, 0, len(p.attrs))
	for k := range p.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Manifest returns a copy of the decoded zarr_conventions entries, in
// document order. Empty when the document has no manifest.
func (p *Parser) Manifest() []ManifestEntry {
	out := make([]ManifestEntry, len(p.manifest))
	copy(out, p.manifest)
	return out
}

// Listed reports whether any manifest entry references the definition. This
// is a discovery hint only; payload presence is determined by the data
// keys.
func (p *Parser) Listed(def Definition) bool {
	for _, entry := range p.manifest {
		if entry.Matches(def) {
			return true
		}
	}
	return false
}
