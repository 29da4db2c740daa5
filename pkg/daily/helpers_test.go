package daily

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
)

type fakeStore struct {
	problems []db.Problem
	readErr  error
	writeErr error
	// readErrAfterWrite makes every read after the first completion fail.
	readErrAfterWrite error
	reads             int
	writes            int
}

func (f *fakeStore) GetAllProblems() ([]db.Problem, error) {
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	if f.writes > 0 && f.readErrAfterWrite != nil {
		return nil, f.readErrAfterWrite
	}
	return slices.Clone(f.problems), nil
}

func (f *fakeStore) UpdateProblemAsCompleted(problemID string, now time.Time) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.problems {
		if f.problems[i].ID == problemID {
			f.problems[i].TimesPracticed++
			f.problems[i].LastPracticedAt = now
			f.writes++
			return nil
		}
	}
	return db.ErrProblemNotFound
}

var errStoreDown = errors.New("store down")

func makeCatalog(n int, practicedAt time.Time) []db.Problem {
	problems := make([]db.Problem, 0, n)
	for i := 1; i <= n; i++ {
		problems = append(problems, db.Problem{
			ID:              fmt.Sprintf("p-%02d", i),
			Number:          uint(i),
			Name:            fmt.Sprintf("Problem %d", i),
			Category:        "Greedy",
			CreatedAt:       practicedAt,
			LastPracticedAt: practicedAt,
		})
	}
	return problems
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ids(picks []Pick) []string {
	out := make([]string, 0, len(picks))
	for _, pick := range picks {
		out = append(out, pick.Problem.ID)
	}
	return out
}

func problemIDs(problems []db.Problem) []string {
	out := make([]string, 0, len(problems))
	for _, problem := range problems {
		out = append(out, problem.ID)
	}
	return out
}
