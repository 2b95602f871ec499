package conventions

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Definition is the immutable identity of a convention: a stable UUID, the
// location of its JSON schema, the location of its human-readable
// specification, and a short name and description. Convention packages
// expose their Definition as a package-level variable and return it from
// the Convention interface.
type Definition struct {
	UUID        uuid.UUID
	SchemaURL   string
	SpecURL     string
	Name        string
	Description string
}

// Validate checks that the definition carries a non-nil UUID and absolute
// schema and spec URLs. Returns an error wrapping ErrInvalidDefinition.
func (d Definition) Validate() error {
	if d.UUID == uuid.Nil {
		return fmt.Errorf("%w: uuid is nil", ErrInvalidDefinition)
	}
	for _, f := range []struct{ name, value string }{
		{"schema_url", d.SchemaURL},
		{"spec_url", d.SpecURL},
	} {
		u, err := url.Parse(f.value)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: %s %q is not an absolute URI", ErrInvalidDefinition, f.name, f.value)
		}
	}
	return nil
}

// Entry returns the full manifest entry for this definition, all fields set.
func (d Definition) Entry() ManifestEntry {
	id := d.UUID
	return ManifestEntry{
		UUID:        &id,
		SchemaURL:   d.SchemaURL,
		SpecURL:     d.SpecURL,
		Name:        d.Name,
		Description: d.Description,
	}
}

// ManifestEntry is one element of the zarr_conventions list. Every field is
// optional on the wire, but a written entry must carry at least one of UUID,
// SchemaURL, or SpecURL; an entry with none of these cannot be resolved back
// to a convention and is rejected.
type ManifestEntry struct {
	UUID        *uuid.UUID `json:"uuid,omitempty"`
	SchemaURL   string     `json:"schema_url,omitempty"`
	SpecURL     string     `json:"spec_url,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Validate returns an error wrapping ErrMalformedManifestEntry when the
// entry has no identifying field.
func (e ManifestEntry) Validate() error {
	if e.UUID == nil && e.SchemaURL == "" && e.SpecURL == "" {
		return fmt.Errorf("%w: none of uuid, schema_url, spec_url set", ErrMalformedManifestEntry)
	}
	return nil
}

// Matches reports whether the entry references the given definition through
// any of its identifying fields.
func (e ManifestEntry) Matches(def Definition) bool {
	if e.UUID != nil && *e.UUID == def.UUID {
		return true
	}
	if e.SchemaURL != "" && e.SchemaURL == def.SchemaURL {
		return true
	}
	return e.SpecURL != "" && e.SpecURL == def.SpecURL
}
