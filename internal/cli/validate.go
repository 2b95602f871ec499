package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an attributes document for convention errors",
		Long: "Validate the zarr_conventions manifest, detect representation conflicts\n" +
			"and malformed payloads for compiled-in conventions, and warn about\n" +
			"manifest entries that do not match the data keys. Exits non-zero on\n" +
			"errors; warnings alone exit zero.",
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read attributes: %w", err)
	}
	p, err := conventions.ParseJSON(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var problems []error
	for _, c := range builtins() {
		def := c.Definition()
		present, err := p.Parse(c)
		switch {
		case errors.Is(err, conventions.ErrRepresentationConflict):
			problems = append(problems, err)
		case err != nil:
			problems = append(problems, fmt.Errorf("convention %q: %w", def.Name, err))
		case present && !p.Listed(def):
			fmt.Fprintf(out, "warning: %q data present but not listed in %s\n",
				def.Name, conventions.ManifestKey)
		case !present && p.Listed(def):
			fmt.Fprintf(out, "warning: %q listed in %s but no data keys present\n",
				def.Name, conventions.ManifestKey)
		}
	}

	if len(problems) > 0 {
		return errors.Join(problems...)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
