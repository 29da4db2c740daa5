package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smith3v/lcurve/pkg/daily"
	"github.com/spf13/cobra"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number|id>",
		Short: "Mark one of today's problems as practiced",
		Long: `Mark one of today's problems as practiced. The problem is given by its
problem number, its id, or a unique prefix of its id, and must be on
today's shortlist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			return completeAndShow(cmd.OutOrStdout(), a, session, args[0])
		},
	}
}

func completeAndShow(out io.Writer, a *app, session *daily.Session, ref string) error {
	picks, err := session.Today()
	if err != nil {
		return err
	}
	pick, err := resolvePick(picks, ref)
	if err != nil {
		return err
	}
	if err := session.MarkComplete(pick.Problem.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Marked #%d %s as practiced.\n\n", pick.Problem.Number, pick.Problem.Name); err != nil {
		return err
	}
	picks, err = session.Today()
	if err != nil {
		return err
	}
	return renderShortlist(out, session.Date(), picks, a.location)
}

// resolvePick matches ref against the shortlist by problem number, then by
// id or unique id prefix.
func resolvePick(picks []daily.Pick, ref string) (daily.Pick, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return daily.Pick{}, fmt.Errorf("%w: empty problem reference", daily.ErrNotFound)
	}
	if number, err := strconv.ParseUint(ref, 10, 64); err == nil {
		for _, pick := range picks {
			if uint64(pick.Problem.Number) == number {
				return pick, nil
			}
		}
	}

	var matches []daily.Pick
	for _, pick := range picks {
		if pick.Problem.ID == ref {
			return pick, nil
		}
		if strings.HasPrefix(pick.Problem.ID, ref) {
			matches = append(matches, pick)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return daily.Pick{}, fmt.Errorf("%w: %q is not on today's shortlist", daily.ErrNotFound, ref)
	default:
		return daily.Pick{}, fmt.Errorf("%w: %q matches %d problems on today's shortlist", daily.ErrNotFound, ref, len(matches))
	}
}
