package daily

import (
	"time"

	"github.com/smith3v/lcurve/pkg/db"
)

const day = 24 * time.Hour

// DaysSince counts whole days from last to now. A last time in the future
// (clock set backwards) counts as zero.
func DaysSince(last, now time.Time) int64 {
	elapsed := now.Sub(last)
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed / day)
}

// Weight is the review priority for a practice history: whole days since
// the last practice divided by one more than the practice count.
func Weight(lastPracticedAt time.Time, timesPracticed int, now time.Time) float64 {
	if timesPracticed < 0 {
		timesPracticed = 0
	}
	return float64(DaysSince(lastPracticedAt, now)) / float64(1+timesPracticed)
}

func Score(problem db.Problem, now time.Time) float64 {
	return Weight(problem.LastPracticedAt, problem.TimesPracticed, now)
}
