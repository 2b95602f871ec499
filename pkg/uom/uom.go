// Package uom implements the "uom" convention: units of measurement for
// numerical Zarr arrays, stored as a nested object under the "uom"
// attribute key.
package uom

import (
	"github.com/google/uuid"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

// Definition identifies the unit-of-measurement convention.
var Definition = conventions.Definition{
	UUID:        uuid.MustParse("3bbe438d-df37-49fe-8e2b-739296d46dfb"),
	SchemaURL:   "https://raw.githubusercontent.com/clbarnes/zarr-convention-uom/refs/tags/v1/schema.json",
	SpecURL:     "https://github.com/clbarnes/zarr-convention-uom/blob/v1/README.md",
	Name:        "uom",
	Description: "Units of measurement for Zarr arrays",
}

func init() {
	conventions.MustRegister(Definition)
}

// UnitOfMeasurement is the convention payload.
type UnitOfMeasurement struct {
	UCUM UCUM `json:"ucum"`
	// Description of the measured quantity in free text.
	Description string `json:"description,omitempty"`
}

// UCUM carries a unit using the Unified Code for Units and Measures
// specification (https://ucum.org/ucum).
type UCUM struct {
	// Unit is the case-sensitive UCUM unit string, possibly including a
	// magnitude term. Empty means an arbitrary unit of magnitude 1.
	Unit string `json:"unit,omitempty"`
	// Version of the UCUM specification, if pinned.
	Version string `json:"version,omitempty"`
}

// Definition returns the convention identity.
func (UnitOfMeasurement) Definition() conventions.Definition { return Definition }

// NestedKey returns the attribute key holding the payload.
func (UnitOfMeasurement) NestedKey() string { return "uom" }

// Builder assembles a UnitOfMeasurement.
type Builder struct {
	unit        string
	version     string
	description string
}

// NewBuilder returns an empty unit builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Unit sets the case-sensitive UCUM string, which may include a magnitude
// term.
func (b *Builder) Unit(unit string) *Builder {
	b.unit = unit
	return b
}

// Version sets the UCUM specification version in use.
func (b *Builder) Version(version string) *Builder {
	b.version = version
	return b
}

// Description describes the measured quantity in free text.
func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

// Build returns the unit.
func (b *Builder) Build() UnitOfMeasurement {
	return UnitOfMeasurement{
		UCUM:        UCUM{Unit: b.unit, Version: b.version},
		Description: b.description,
	}
}
