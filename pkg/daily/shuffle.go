package daily

import (
	"cmp"
	"crypto/sha256"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
)

// SeedLayout formats the calendar date that seeds the daily shuffle.
const SeedLayout = "2006-01-02"

// SeedString is the calendar date of now in now's location.
func SeedString(now time.Time) string {
	return now.Format(SeedLayout)
}

// Seed derives the generator state from a seed string.
func Seed(seedString string) [32]byte {
	return sha256.Sum256([]byte(seedString))
}

// DailyShuffle returns a permutation of problems that depends only on the
// set of problems and the calendar date of now. The input is put in
// canonical order first so storage ordering cannot leak into the result.
func DailyShuffle(problems []db.Problem, now time.Time) []db.Problem {
	shuffled := slices.Clone(problems)
	slices.SortStableFunc(shuffled, func(a, b db.Problem) int {
		return cmp.Or(cmp.Compare(a.Number, b.Number), cmp.Compare(a.ID, b.ID))
	})

	rng := rand.New(rand.NewChaCha8(Seed(SeedString(now))))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
