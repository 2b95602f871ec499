// Package catalog persists convention definitions in a local SQLite
// database, so that tooling can resolve manifest entries for conventions
// that are not compiled into the binary.
package catalog

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound reports a lookup for a definition the catalog does not hold.
var ErrNotFound = errors.New("convention not found in catalog")

// Store is a catalog backed by a single SQLite file. Safe for concurrent
// use within one process; the schema makes Open idempotent on an existing
// catalog.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens the catalog at path, creating the file, parent directory, and
// schema when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Put inserts or replaces a definition, keyed by UUID.
func (s *Store) Put(def conventions.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO conventions (uuid, schema_url, spec_url, name, description)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(uuid) DO UPDATE SET
		   schema_url = excluded.schema_url,
		   spec_url = excluded.spec_url,
		   name = excluded.name,
		   description = excluded.description`,
		def.UUID.String(), def.SchemaURL, def.SpecURL, def.Name, def.Description,
	)
	if err != nil {
		return fmt.Errorf("store convention %q: %w", def.Name, err)
	}
	return nil
}

// Get retrieves a definition by UUID. Returns ErrNotFound when absent.
func (s *Store) Get(id uuid.UUID) (conventions.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT uuid, schema_url, spec_url, name, description FROM conventions WHERE uuid = ?",
		id.String(),
	)
	return hydrate(row)
}

// BySchemaURL retrieves a definition by schema URL. Returns ErrNotFound
// when absent.
func (s *Store) BySchemaURL(url string) (conventions.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT uuid, schema_url, spec_url, name, description FROM conventions WHERE schema_url = ?",
		url,
	)
	return hydrate(row)
}

// List returns all cataloged definitions ordered by name.
func (s *Store) List() ([]conventions.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT uuid, schema_url, spec_url, name, description FROM conventions ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("list conventions: %w", err)
	}
	defer rows.Close()

	var defs []conventions.Definition
	for rows.Next() {
		def, err := hydrate(rows)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// LoadInto registers every cataloged definition in the given registry.
// Definitions already registered identically are skipped by the registry's
// idempotency rule; a conflicting definition aborts the load.
func (s *Store) LoadInto(r *conventions.Registry) error {
	defs, err := s.List()
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("load convention %q: %w", def.Name, err)
		}
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrate builds a Definition from a conventions table row.
func hydrate(row scanner) (conventions.Definition, error) {
	var (
		def   conventions.Definition
		rawID string
	)
	err := row.Scan(&rawID, &def.SchemaURL, &def.SpecURL, &def.Name, &def.Description)
	if err == sql.ErrNoRows {
		return conventions.Definition{}, ErrNotFound
	}
	if err != nil {
		return conventions.Definition{}, fmt.Errorf("scan convention: %w", err)
	}
	def.UUID, err = uuid.Parse(rawID)
	if err != nil {
		return conventions.Definition{}, fmt.Errorf("parse cataloged uuid %q: %w", rawID, err)
	}
	return def, nil
}
