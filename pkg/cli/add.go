package cli

import (
	"fmt"

	"github.com/smith3v/lcurve/pkg/catalog"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <number> <name> <category>",
		Short: "Add a problem to the catalog",
		Long: `Add a problem to the catalog. The category is either its name or its
position in the list printed by "lcurve categories".`,
		Example: `  lcurve add 1 "Two Sum" "Arrays & Hasing"
  lcurve add 206 "Reverse Linked List" 6`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := catalog.ParseNewProblem(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			repo, err := a.repository()
			if err != nil {
				return err
			}
			problem, err := catalog.AddProblem(repo, input, a.clock())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s (%s)\n", problem.Number, problem.Name, problem.Category)
			return err
		},
	}
}
