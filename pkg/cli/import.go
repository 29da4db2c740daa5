package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/smith3v/lcurve/pkg/catalog"
	"github.com/smith3v/lcurve/pkg/logger"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv|->",
		Short: "Import problems from a CSV file",
		Long: `Import problems from a CSV file with number, name and category columns.
Comma, semicolon and tab separated files are accepted, with or without a
header row. Problems already in the catalog are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(a.in)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			problems, skipped, err := catalog.ParseProblemsCSV(data)
			if err != nil {
				return err
			}
			repo, err := a.repository()
			if err != nil {
				return err
			}
			inserted, duplicates, err := catalog.ImportProblems(repo, problems, a.clock())
			if err != nil {
				return err
			}
			logger.Info("problems imported", "file", args[0], "inserted", inserted, "duplicates", duplicates, "skipped", skipped)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d problems (%d duplicates, %d invalid rows skipped).\n", inserted, duplicates, skipped)
			return err
		},
	}
}
