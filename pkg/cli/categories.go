package cli

import (
	"fmt"

	"github.com/smith3v/lcurve/pkg/catalog"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the problem categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, category := range catalog.Categories {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, category); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
