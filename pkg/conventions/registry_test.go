package conventions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(nestedOnlyDef))

	def, ok := r.ByUUID(nestedOnlyDef.UUID)
	require.True(t, ok)
	assert.Equal(t, nestedOnlyDef, def)

	def, ok = r.BySchemaURL(nestedOnlyDef.SchemaURL)
	require.True(t, ok)
	assert.Equal(t, nestedOnlyDef, def)

	def, ok = r.BySpecURL(nestedOnlyDef.SpecURL)
	require.True(t, ok)
	assert.Equal(t, nestedOnlyDef, def)

	_, ok = r.ByUUID(eitherDef.UUID)
	assert.False(t, ok)
}

func TestRegistryIdempotentRegistration(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(nestedOnlyDef))
	// Identical re-registration is a no-op.
	require.NoError(t, r.Register(nestedOnlyDef))

	// Same UUID with different content conflicts.
	altered := nestedOnlyDef
	altered.Description = "something else"
	assert.ErrorIs(t, r.Register(altered), ErrDuplicateDefinition)

	// Different UUID but a URL already bound conflicts too.
	altered = nestedOnlyDef
	altered.UUID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, r.Register(altered), ErrDuplicateDefinition)
}

func TestRegistryRejectsInvalidDefinition(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name   string
		mutate func(*Definition)
	}{
		{"nil uuid", func(d *Definition) { d.UUID = uuid.Nil }},
		{"empty schema url", func(d *Definition) { d.SchemaURL = "" }},
		{"relative spec url", func(d *Definition) { d.SpecURL = "specs/nested_only" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := nestedOnlyDef
			tt.mutate(&def)
			assert.ErrorIs(t, r.Register(def), ErrInvalidDefinition)
		})
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(nestedOnlyDef))
	require.NoError(t, r.Register(eitherDef))

	id := nestedOnlyDef.UUID
	def, ok := r.Resolve(ManifestEntry{UUID: &id})
	require.True(t, ok)
	assert.Equal(t, nestedOnlyDef, def)

	def, ok = r.Resolve(ManifestEntry{SchemaURL: eitherDef.SchemaURL})
	require.True(t, ok)
	assert.Equal(t, eitherDef, def)

	def, ok = r.Resolve(ManifestEntry{SpecURL: eitherDef.SpecURL})
	require.True(t, ok)
	assert.Equal(t, eitherDef, def)

	// UUID wins over a schema URL pointing elsewhere.
	def, ok = r.Resolve(ManifestEntry{UUID: &id, SchemaURL: eitherDef.SchemaURL})
	require.True(t, ok)
	assert.Equal(t, nestedOnlyDef, def)

	_, ok = r.Resolve(ManifestEntry{SchemaURL: "https://example.com/unknown.json"})
	assert.False(t, ok)
}

func TestRegistryDefinitionsOrderedByName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(prefixedOnlyDef))
	require.NoError(t, r.Register(eitherDef))
	require.NoError(t, r.Register(nestedOnlyDef))

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "either", defs[0].Name)
	assert.Equal(t, "nested_only", defs[1].Name)
	assert.Equal(t, "prefixed_only", defs[2].Name)
}

func TestManifestEntryValidate(t *testing.T) {
	id := nestedOnlyDef.UUID
	tests := []struct {
		name    string
		entry   ManifestEntry
		wantErr bool
	}{
		{"uuid only", ManifestEntry{UUID: &id}, false},
		{"schema url only", ManifestEntry{SchemaURL: "https://example.com/s.json"}, false},
		{"spec url only", ManifestEntry{SpecURL: "https://example.com/spec"}, false},
		{"name and description only", ManifestEntry{Name: "x", Description: "y"}, true},
		{"empty", ManifestEntry{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedManifestEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
