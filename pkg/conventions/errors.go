package conventions

import "errors"

// Parse errors.
var (
	// ErrMalformedManifestEntry reports a zarr_conventions entry that has
	// none of uuid, schema_url, or spec_url set, or is not an object at all.
	ErrMalformedManifestEntry = errors.New("malformed manifest entry")

	// ErrDecodeMismatch reports convention data that is physically present
	// but does not deserialize as the requested type.
	ErrDecodeMismatch = errors.New("attribute value does not match expected shape")

	// ErrRepresentationConflict reports a document carrying both the nested
	// and the prefixed form of the same convention. No precedence between
	// the two can be inferred, so the caller must resolve the conflict.
	ErrRepresentationConflict = errors.New("both nested and prefixed representations present")
)

// Build errors.
var (
	ErrKeyCollision                = errors.New("attribute key already occupied")
	ErrInvalidBuilderConfiguration = errors.New("configuration omits all convention identifiers")
	ErrUnsupportedLayout           = errors.New("convention does not support the requested layout")
	ErrValueNotObject              = errors.New("prefixed value must serialize to a JSON object")
	ErrBuilderConsumed             = errors.New("builder already produced a document")
)

// Registry errors.
var (
	ErrDuplicateDefinition = errors.New("conflicting definition already registered")
	ErrInvalidDefinition   = errors.New("invalid convention definition")
)
