package cli

import (
	"github.com/spf13/cobra"
)

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			picks, err := session.Today()
			if err != nil {
				return err
			}
			return renderShortlist(cmd.OutOrStdout(), session.Date(), picks, a.location)
		},
	}
}
