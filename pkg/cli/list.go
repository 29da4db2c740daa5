package cli

import (
	"cmp"
	"slices"
	"time"

	"github.com/smith3v/lcurve/pkg/daily"
	"github.com/smith3v/lcurve/pkg/db"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var byScore bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every problem in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			problems, err := session.Catalog()
			if err != nil {
				return err
			}
			now := a.clock()
			if byScore {
				sortByScore(problems, now)
			}
			return renderCatalog(cmd.OutOrStdout(), problems, now)
		},
	}
	cmd.Flags().BoolVarP(&byScore, "by-score", "s", false, "order by review priority instead of number")
	return cmd
}

// sortByScore orders problems by descending score, keeping number order
// among equal scores.
func sortByScore(problems []db.Problem, now time.Time) {
	slices.SortStableFunc(problems, func(x, y db.Problem) int {
		return cmp.Compare(daily.Score(y, now), daily.Score(x, now))
	})
}
