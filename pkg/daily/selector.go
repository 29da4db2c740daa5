package daily

import (
	"slices"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
)

const (
	CandidatePoolSize = 10
	ShortlistSize     = 3
)

// Pick is a shortlisted problem with the score it was ranked by.
type Pick struct {
	Problem db.Problem
	Score   float64
}

// SelectToday returns the day's shortlist for catalog: the highest scoring
// of the first CandidatePoolSize problems of the daily shuffle, at most
// ShortlistSize of them. Equal scores keep shuffle order.
func SelectToday(catalog []db.Problem, now time.Time) []Pick {
	pool := DailyShuffle(catalog, now)
	if len(pool) > CandidatePoolSize {
		pool = pool[:CandidatePoolSize]
	}

	seen := make(map[string]struct{}, len(pool))
	picks := make([]Pick, 0, len(pool))
	for _, problem := range pool {
		if _, dup := seen[problem.ID]; dup {
			continue
		}
		seen[problem.ID] = struct{}{}
		picks = append(picks, Pick{Problem: problem, Score: Score(problem, now)})
	}

	slices.SortStableFunc(picks, func(a, b Pick) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(picks) > ShortlistSize {
		picks = picks[:ShortlistSize]
	}
	return picks
}
