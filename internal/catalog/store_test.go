package catalog

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

func testDef(name string) conventions.Definition {
	return conventions.Definition{
		UUID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)),
		SchemaURL:   "https://example.com/schemas/" + name + ".json",
		SpecURL:     "https://example.com/specs/" + name,
		Name:        name,
		Description: "Test convention " + name + ".",
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorePutGet(t *testing.T) {
	s := openTestStore(t)
	def := testDef("proj")
	require.NoError(t, s.Put(def))

	got, err := s.Get(def.UUID)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	got, err = s.BySchemaURL(def.SchemaURL)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestStoreGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.BySchemaURL("https://example.com/nowhere.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorePutUpsert(t *testing.T) {
	s := openTestStore(t)
	def := testDef("uom")
	require.NoError(t, s.Put(def))

	def.Description = "Updated description."
	require.NoError(t, s.Put(def))

	got, err := s.Get(def.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Updated description.", got.Description)

	defs, err := s.List()
	require.NoError(t, err)
	assert.Len(t, defs, 1)
}

func TestStorePutInvalid(t *testing.T) {
	s := openTestStore(t)
	def := testDef("bad")
	def.UUID = uuid.Nil
	assert.ErrorIs(t, s.Put(def), conventions.ErrInvalidDefinition)
}

func TestStoreListOrderedByName(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, s.Put(testDef(name)))
	}

	defs, err := s.List()
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "mike", defs[1].Name)
	assert.Equal(t, "zulu", defs[2].Name)
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := Open(path)
	require.NoError(t, err)
	def := testDef("persistent")
	require.NoError(t, s.Put(def))
	require.NoError(t, s.Close())

	// Reopening must keep the stored rows.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(def.UUID)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestStoreLoadInto(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(testDef("one")))
	require.NoError(t, s.Put(testDef("two")))

	reg := conventions.NewRegistry()
	require.NoError(t, s.LoadInto(reg))
	assert.Len(t, reg.Definitions(), 2)

	// A second load is idempotent.
	require.NoError(t, s.LoadInto(reg))
	assert.Len(t, reg.Definitions(), 2)

	// A conflicting registration aborts.
	conflict := testDef("one")
	conflict.Description = "different"
	require.NoError(t, s.Put(conflict))
	assert.ErrorIs(t, s.LoadInto(reg), conventions.ErrDuplicateDefinition)
}
