package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/smith3v/lcurve/pkg/config"
	"github.com/smith3v/lcurve/pkg/daily"
	"github.com/smith3v/lcurve/pkg/logger"
	"github.com/spf13/cobra"
)

const sessionHelp = `Commands:
  today, t        show today's problems
  done, d <ref>   mark a problem from today's list as practiced
  list, l         list the whole catalog by priority
  refresh, r      reload the catalog from storage
  help, h         show this help
  quit, q         leave the session
`

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive practice session",
		Long: `Start an interactive practice session. The shortlist is kept in memory
and replaced automatically when the calendar date changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			seconds := a.cfg.Selection.RefreshIntervalSeconds
			if seconds <= 0 {
				seconds = config.DefaultRefreshIntervalSeconds
			}
			return runSession(cmd.Context(), a, session, cmd.OutOrStdout(), time.Duration(seconds)*time.Second)
		},
	}
}

// runSession is the only user of session; input lines and date checks are
// both handled on this goroutine. Input is read on a separate goroutine that
// only returns once its reader does: a.in is closed on exit when it is an
// io.Closer, otherwise the reader stays blocked until the process ends.
func runSession(ctx context.Context, a *app, session *daily.Session, out io.Writer, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		if closer, ok := a.in.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				logger.Debug("failed to close input", "error", err)
			}
		}
	}()

	picks, err := session.Today()
	if err != nil {
		return err
	}
	if err := renderShortlist(out, session.Date(), picks, a.location); err != nil {
		return err
	}

	lines := make(chan string)
	go readLines(ctx, a.in, lines)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prompt(out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			changed, err := session.Tick()
			if err != nil {
				logger.Warn("failed to roll the shortlist over", "error", err)
				continue
			}
			if !changed {
				continue
			}
			fmt.Fprintln(out)
			if picks, err := session.Today(); err == nil {
				renderShortlist(out, session.Date(), picks, a.location)
			}
			prompt(out)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := handleSessionLine(out, a, session, line)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
			prompt(out)
		}
	}
}

func readLines(ctx context.Context, in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		logger.Error("failed to read input", "error", err)
	}
}

func handleSessionLine(out io.Writer, a *app, session *daily.Session, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return true, nil
	case "help", "h", "?":
		_, err := io.WriteString(out, sessionHelp)
		return false, err
	case "today", "t":
		picks, err := session.Today()
		if err != nil {
			return false, err
		}
		return false, renderShortlist(out, session.Date(), picks, a.location)
	case "list", "l":
		problems, err := session.Catalog()
		if err != nil {
			return false, err
		}
		now := a.clock()
		sortByScore(problems, now)
		return false, renderCatalog(out, problems, now)
	case "done", "d":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: done <number|id>")
		}
		return false, completeAndShow(out, a, session, fields[1])
	case "refresh", "r":
		if err := session.Refresh(); err != nil {
			return false, err
		}
		picks, err := session.Today()
		if err != nil {
			return false, err
		}
		return false, renderShortlist(out, session.Date(), picks, a.location)
	default:
		return false, fmt.Errorf("unknown command %q, type help for the list", fields[0])
	}
}

func prompt(out io.Writer) {
	fmt.Fprint(out, "> ")
}
