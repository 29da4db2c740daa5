package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/smith3v/lcurve/pkg/daily"
	"github.com/smith3v/lcurve/pkg/db"
)

const dateLayout = "2006-01-02"

func renderShortlist(out io.Writer, date string, picks []daily.Pick, location *time.Location) error {
	if len(picks) == 0 {
		_, err := fmt.Fprintf(out, "No problems for %s. Add some with `lcurve add`.\n", date)
		return err
	}
	if _, err := fmt.Fprintf(out, "Today's problems (%s):\n\n", date); err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNumber\tProblem\tCategory\tScore\tPracticed\tLast practiced")
	for i, pick := range picks {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%d\t%s\n",
			i+1,
			pick.Problem.Number,
			pick.Problem.Name,
			pick.Problem.Category,
			formatScore(pick.Score),
			pick.Problem.TimesPracticed,
			formatDate(pick.Problem.LastPracticedAt, location),
		)
	}
	return w.Flush()
}

func renderCatalog(out io.Writer, problems []db.Problem, now time.Time) error {
	if len(problems) == 0 {
		_, err := fmt.Fprintln(out, "The catalog is empty.")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Number\tProblem\tCategory\tScore\tPracticed\tLast practiced\tID")
	for _, problem := range problems {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			problem.Number,
			problem.Name,
			problem.Category,
			formatScore(daily.Score(problem, now)),
			problem.TimesPracticed,
			formatDate(problem.LastPracticedAt, now.Location()),
			problem.ID,
		)
	}
	return w.Flush()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func formatDate(t time.Time, location *time.Location) string {
	if location != nil {
		t = t.In(location)
	}
	return t.Format(dateLayout)
}
