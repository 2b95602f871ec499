package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the conventions declared by an attributes document",
		Long: "Read a JSON attributes object, print each zarr_conventions entry, and\n" +
			"report whether the entry resolves to a known convention definition.",
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

// inspectEntry is the JSON output shape for one manifest entry.
type inspectEntry struct {
	Entry    conventions.ManifestEntry `json:"entry"`
	Known    bool                      `json:"known"`
	Resolved *conventions.Definition   `json:"resolved,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read attributes: %w", err)
	}
	p, err := conventions.ParseJSON(data)
	if err != nil {
		return err
	}
	reg, err := resolveRegistry()
	if err != nil {
		return err
	}

	manifest := p.Manifest()
	report := make([]inspectEntry, 0, len(manifest))
	for _, entry := range manifest {
		item := inspectEntry{Entry: entry}
		if def, ok := reg.Resolve(entry); ok {
			item.Known = true
			item.Resolved = &def
		}
		report = append(report, item)
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if len(report) == 0 {
		fmt.Fprintln(out, "no zarr_conventions entries")
		return nil
	}
	fmt.Fprintf(out, "%d convention(s) declared:\n", len(report))
	for i, item := range report {
		fmt.Fprintf(out, "%d. %s\n", i+1, describeEntry(item.Entry))
		if item.Known {
			fmt.Fprintf(out, "   known: %s — %s\n", item.Resolved.Name, item.Resolved.Description)
		} else {
			fmt.Fprintln(out, "   unknown convention")
		}
	}
	return nil
}

// describeEntry summarizes a manifest entry by its most specific fields.
func describeEntry(entry conventions.ManifestEntry) string {
	name := entry.Name
	if name == "" {
		name = "(unnamed)"
	}
	switch {
	case entry.UUID != nil:
		return fmt.Sprintf("%s uuid=%s", name, entry.UUID)
	case entry.SchemaURL != "":
		return fmt.Sprintf("%s schema=%s", name, entry.SchemaURL)
	default:
		return fmt.Sprintf("%s spec=%s", name, entry.SpecURL)
	}
}
