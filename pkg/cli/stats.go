package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/smith3v/lcurve/pkg/daily"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize practice history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			session, err := a.newSession()
			if err != nil {
				return err
			}
			problems, err := session.Catalog()
			if err != nil {
				return err
			}
			now := a.clock()
			// The streak may reach back to the first completion ever logged.
			events, err := repo.PracticeEventsSince(time.Time{})
			if err != nil {
				return fmt.Errorf("%w: %w", daily.ErrStorageUnavailable, err)
			}
			summary := daily.Summarize(problems, events, now)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Problems\t%d\n", summary.CatalogSize)
			fmt.Fprintf(w, "Never practiced\t%d\n", summary.NeverPracticed)
			fmt.Fprintf(w, "Total practices\t%d\n", summary.TotalPractices)
			fmt.Fprintf(w, "Streak\t%d days\n", summary.Streak)
			if summary.MostOverdue != nil {
				fmt.Fprintf(w, "Most overdue\t#%d %s (%s)\n",
					summary.MostOverdue.Problem.Number,
					summary.MostOverdue.Problem.Name,
					formatScore(summary.MostOverdue.Score),
				)
			}
			counts := make([]string, 0, len(summary.LastWeek))
			for _, day := range summary.LastWeek {
				counts = append(counts, fmt.Sprintf("%s:%d", day.Date[5:], day.Count))
			}
			fmt.Fprintf(w, "Last 7 days\t%s\n", strings.Join(counts, " "))
			return w.Flush()
		},
	}
}
