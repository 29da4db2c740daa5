package cli

import (
	"fmt"
	"os"

	"github.com/smith3v/lcurve/pkg/catalog"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.csv|-]",
		Short: "Export the catalog as CSV",
		Long: `Export the catalog with its practice history as CSV. Without an argument
the file is named after today's date; "-" writes to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			problems, err := session.Catalog()
			if err != nil {
				return err
			}
			data, err := catalog.BuildExportCSV(problems)
			if err != nil {
				return err
			}

			target := catalog.ExportFilename(a.clock())
			if len(args) == 1 {
				target = args[0]
			}
			if target == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d problems to %s\n", len(problems), target)
			return err
		},
	}
}
