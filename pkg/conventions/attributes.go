package conventions

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ManifestKey is the reserved top-level attribute key holding the list of
// in-use conventions.
const ManifestKey = "zarr_conventions"

// Attributes is the flat string-keyed attributes map of a Zarr metadata
// document, with values kept as raw JSON. encoding/json marshals map keys
// in sorted order, so serializing an Attributes value is deterministic.
type Attributes map[string]json.RawMessage

// Clone returns a shallow copy of the map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// collectPrefixed gathers every key sharing the prefix, strips the prefix,
// and returns the resulting flat object. The reserved manifest key never
// participates. Returns false when no key matches.
func collectPrefixed(prefix string, attrs Attributes) (Attributes, bool) {
	out := Attributes{}
	for k, v := range attrs {
		if k == ManifestKey {
			continue
		}
		if name, ok := strings.CutPrefix(k, prefix); ok {
			out[name] = v
		}
	}
	return out, len(out) > 0
}

// isNull reports whether a raw value is the JSON null literal. A null
// payload unmarshals into a struct as all zero values, so it has to be
// rejected before decoding.
func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// hasPrefixed reports whether any non-reserved key starts with the prefix.
func hasPrefixed(prefix string, attrs Attributes) bool {
	for k := range attrs {
		if k != ManifestKey && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}
