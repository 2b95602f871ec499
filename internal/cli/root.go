// Package cli implements the zarrconv command-line interface: inspection
// and validation of Zarr attributes documents, and a local catalog of
// convention definitions.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zarr-experimental/conventions-go/internal/catalog"
	"github.com/zarr-experimental/conventions-go/pkg/conventions"
	"github.com/zarr-experimental/conventions-go/pkg/license"
	"github.com/zarr-experimental/conventions-go/pkg/proj"
	"github.com/zarr-experimental/conventions-go/pkg/uom"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir   string
	catalogPath string
	jsonMode    bool
}

var flags rootFlags

// builtins returns pointers to the compiled-in convention types, used for
// presence and conflict checks that need each type's key constants.
func builtins() []conventions.Convention {
	return []conventions.Convention{
		&license.License{},
		&proj.Proj{},
		&uom.UnitOfMeasurement{},
	}
}

// NewRootCmd creates the top-level "zarrconv" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zarrconv",
		Short: "Inspect and validate Zarr convention metadata",
		Long: "Zarrconv reads the attributes object of a Zarr array or group metadata\n" +
			"document, lists the conventions it declares, validates the manifest\n" +
			"against the data keys, and manages a local catalog of convention\n" +
			"definitions.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .zarrconv)")
	root.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "convention catalog file (default: <config-dir>/catalog.db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newCatalogCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// resolveRegistry returns the compiled-in registry contents merged with the
// catalog, when a catalog file exists. Catalog conflicts with compiled-in
// definitions are reported rather than silently shadowed.
func resolveRegistry() (*conventions.Registry, error) {
	reg := conventions.NewRegistry()
	for _, def := range conventions.Default().Definitions() {
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}

	path, err := resolveCatalogPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		// No catalog is not an error.
		return reg, nil
	}

	store, err := catalog.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.LoadInto(reg); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return reg, nil
}
