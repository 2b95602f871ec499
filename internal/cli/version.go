package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

const modulePath = "github.com/zarr-experimental/conventions-go"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the zarrconv version and compiled-in conventions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := conventions.Default().Definitions()
			names := make([]string, 0, len(defs))
			for _, def := range defs {
				names = append(names, def.Name)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "zarrconv v%s\n", conventions.Version)
			fmt.Fprintf(out, "module: %s\n", modulePath)
			fmt.Fprintf(out, "compiled-in conventions (%d): %s\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}
}
