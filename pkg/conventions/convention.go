package conventions

// Convention is implemented by every convention payload type. Types must
// also implement at least one of Nested and Prefixed, and must marshal to
// and from JSON with encoding/json.
type Convention interface {
	// Definition returns the identity of the convention. It must be
	// callable on the zero value.
	Definition() Definition
}

// Nested is the capability of storing the payload under a single top-level
// attribute key, as a sub-object.
type Nested interface {
	Convention

	// NestedKey returns the fixed top-level key, e.g. "proj".
	NestedKey() string
}

// Prefixed is the capability of storing each top-level payload field as a
// flat attribute key sharing a common prefix.
type Prefixed interface {
	Convention

	// KeyPrefix returns the fixed prefix including its delimiter,
	// e.g. "proj:".
	KeyPrefix() string
}
