package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zarr-experimental/conventions-go/internal/catalog"
	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

func newCatalogCmd() *cobra.Command {
	cat := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local convention catalog",
	}
	cat.AddCommand(newCatalogAddCmd())
	cat.AddCommand(newCatalogListCmd())
	return cat
}

// catalogAddFlags holds the definition fields for "catalog add".
type catalogAddFlags struct {
	uuid        string
	schemaURL   string
	specURL     string
	name        string
	description string
	fromFile    string
}

// definitionJSON is the wire shape of a definition file, matching the
// manifest field names.
type definitionJSON struct {
	UUID        uuid.UUID `json:"uuid"`
	SchemaURL   string    `json:"schema_url"`
	SpecURL     string    `json:"spec_url"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func newCatalogAddCmd() *cobra.Command {
	var add catalogAddFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a convention definition to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := add.definition()
			if err != nil {
				return err
			}

			path, err := resolveCatalogPath()
			if err != nil {
				return err
			}
			store, err := catalog.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Put(def); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cataloged %q (%s)\n", def.Name, def.UUID)
			return nil
		},
	}

	cmd.Flags().StringVar(&add.uuid, "uuid", "", "convention UUID")
	cmd.Flags().StringVar(&add.schemaURL, "schema-url", "", "absolute URL of the JSON schema")
	cmd.Flags().StringVar(&add.specURL, "spec-url", "", "absolute URL of the specification")
	cmd.Flags().StringVar(&add.name, "name", "", "convention name")
	cmd.Flags().StringVar(&add.description, "description", "", "convention description")
	cmd.Flags().StringVar(&add.fromFile, "from-file", "", "JSON file holding the definition")
	return cmd
}

// definition assembles a Definition from --from-file or the field flags.
func (f catalogAddFlags) definition() (conventions.Definition, error) {
	if f.fromFile != "" {
		data, err := os.ReadFile(f.fromFile)
		if err != nil {
			return conventions.Definition{}, fmt.Errorf("read definition: %w", err)
		}
		var dj definitionJSON
		if err := json.Unmarshal(data, &dj); err != nil {
			return conventions.Definition{}, fmt.Errorf("decode definition: %w", err)
		}
		return conventions.Definition(dj), nil
	}

	id, err := uuid.Parse(f.uuid)
	if err != nil {
		return conventions.Definition{}, fmt.Errorf("parse --uuid: %w", err)
	}
	return conventions.Definition{
		UUID:        id,
		SchemaURL:   f.schemaURL,
		SpecURL:     f.specURL,
		Name:        f.name,
		Description: f.description,
	}, nil
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged convention definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveCatalogPath()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if _, err := os.Stat(path); err != nil {
				if flags.jsonMode {
					fmt.Fprintln(out, "[]")
					return nil
				}
				fmt.Fprintln(out, "catalog is empty")
				return nil
			}

			store, err := catalog.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			defs, err := store.List()
			if err != nil {
				return err
			}

			if flags.jsonMode {
				report := make([]definitionJSON, 0, len(defs))
				for _, def := range defs {
					report = append(report, definitionJSON(def))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if len(defs) == 0 {
				fmt.Fprintln(out, "catalog is empty")
				return nil
			}
			for _, def := range defs {
				fmt.Fprintf(out, "%s\t%s\t%s\n", def.Name, def.UUID, def.SchemaURL)
			}
			return nil
		},
	}
}
