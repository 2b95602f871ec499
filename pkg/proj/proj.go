// Package proj implements the "proj" convention: coordinate reference
// system information for geospatial data. The payload may be stored either
// nested under the "proj" key or flattened under the "proj:" prefix.
package proj

import (
	"github.com/google/uuid"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

// Definition identifies the proj convention.
var Definition = conventions.Definition{
	UUID:        uuid.MustParse("ef154843-db6c-41c3-8ccf-64294a8fa889"),
	SchemaURL:   "https://raw.githubusercontent.com/zarr-experimental/proj-nested-key/refs/tags/v1/schema.json",
	SpecURL:     "https://example.com/specs/proj",
	Name:        "proj",
	Description: "Coordinate reference system information for geospatial data.",
}

func init() {
	conventions.MustRegister(Definition)
}

// Proj is the convention payload.
type Proj struct {
	// Code is the CRS authority code, e.g. "EPSG:4326".
	Code string `json:"code"`
}

// Definition returns the convention identity.
func (Proj) Definition() conventions.Definition { return Definition }

// NestedKey returns the attribute key used by the nested layout.
func (Proj) NestedKey() string { return "proj" }

// KeyPrefix returns the key prefix used by the flat layout.
func (Proj) KeyPrefix() string { return "proj:" }
