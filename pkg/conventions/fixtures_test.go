package conventions

import "github.com/google/uuid"

// Test conventions mirroring the three capability shapes: nested only,
// prefixed only, and both.

type nestedOnly struct {
	A int `json:"a"`
	B int `json:"b"`
}

var nestedOnlyDef = Definition{
	UUID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	SchemaURL:   "https://example.com/schemas/nested_only.json",
	SpecURL:     "https://example.com/specs/nested_only",
	Name:        "nested_only",
	Description: "A convention that must be represented in nested form.",
}

func (nestedOnly) Definition() Definition { return nestedOnlyDef }
func (nestedOnly) NestedKey() string      { return "nested_only" }

type prefixedOnly struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var prefixedOnlyDef = Definition{
	UUID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
	SchemaURL:   "https://example.com/schemas/prefixed_only.json",
	SpecURL:     "https://example.com/specs/prefixed_only",
	Name:        "prefixed_only",
	Description: "A convention that must be represented in prefixed form.",
}

func (prefixedOnly) Definition() Definition { return prefixedOnlyDef }
func (prefixedOnly) KeyPrefix() string      { return "prefixed_only:" }

type either struct {
	Foo int `json:"foo"`
	Bar int `json:"bar"`
}

var eitherDef = Definition{
	UUID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
	SchemaURL:   "https://example.com/schemas/either.json",
	SpecURL:     "https://example.com/specs/either",
	Name:        "either",
	Description: "A convention that can be represented in either form.",
}

func (either) Definition() Definition { return eitherDef }
func (either) NestedKey() string      { return "either" }
func (either) KeyPrefix() string      { return "either:" }

// noLayout implements Convention but declares no layout.
type noLayout struct{}

var noLayoutDef = Definition{
	UUID:        uuid.MustParse("44444444-4444-4444-4444-444444444444"),
	SchemaURL:   "https://example.com/schemas/no_layout.json",
	SpecURL:     "https://example.com/specs/no_layout",
	Name:        "no_layout",
	Description: "A convention with no declared layout.",
}

func (noLayout) Definition() Definition { return noLayoutDef }

// scalarPrefixed declares the prefixed layout but serializes to a JSON
// string rather than an object.
type scalarPrefixed struct {
	Value string
}

var scalarPrefixedDef = Definition{
	UUID:        uuid.MustParse("55555555-5555-5555-5555-555555555555"),
	SchemaURL:   "https://example.com/schemas/scalar.json",
	SpecURL:     "https://example.com/specs/scalar",
	Name:        "scalar",
	Description: "A convention whose payload is not an object.",
}

func (scalarPrefixed) Definition() Definition { return scalarPrefixedDef }
func (scalarPrefixed) KeyPrefix() string      { return "scalar:" }

func (s scalarPrefixed) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.Value + `"`), nil
}
