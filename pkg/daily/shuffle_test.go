package daily

import (
	"encoding/hex"
	"slices"
	"testing"
	"time"
)

func TestSeedIsSHA256OfDate(t *testing.T) {
	seed := Seed("2024-01-01")
	want := "41b62fb4518505d36dcd35c683efe1310d24ea22d6d146a0804c818070531814"
	if got := hex.EncodeToString(seed[:]); got != want {
		t.Fatalf("expected seed %s, got %s", want, got)
	}
}

func TestSeedStringUsesCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	instant := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)
	if got := SeedString(instant); got != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %s", got)
	}
	if got := SeedString(instant.In(loc)); got != "2024-01-01" {
		t.Fatalf("expected 2024-01-01 in UTC-5, got %s", got)
	}
}

func TestDailyShuffleDeterministicWithinDay(t *testing.T) {
	catalog := makeCatalog(25, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	morning := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 23, 55, 0, 0, time.UTC)

	first := problemIDs(DailyShuffle(catalog, morning))
	second := problemIDs(DailyShuffle(catalog, evening))
	if !slices.Equal(first, second) {
		t.Fatalf("expected identical order within a day:\n%v\n%v", first, second)
	}
}

func TestDailyShuffleIgnoresInputOrder(t *testing.T) {
	catalog := makeCatalog(15, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	reversed := slices.Clone(catalog)
	slices.Reverse(reversed)
	now := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	if !slices.Equal(problemIDs(DailyShuffle(catalog, now)), problemIDs(DailyShuffle(reversed, now))) {
		t.Fatal("expected storage order not to affect the daily shuffle")
	}
}

func TestDailyShuffleIsPermutation(t *testing.T) {
	catalog := makeCatalog(12, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	shuffled := DailyShuffle(catalog, time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC))

	got := problemIDs(shuffled)
	want := problemIDs(catalog)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("expected a permutation of the catalog, got %v", got)
	}
	if catalog[0].ID != "p-01" {
		t.Fatal("expected input slice to be left untouched")
	}
}

func TestDailyShuffleVariesAcrossDays(t *testing.T) {
	catalog := makeCatalog(12, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	const days = 100
	differing := 0
	for i := 0; i < days; i++ {
		today := start.AddDate(0, 0, i)
		tomorrow := today.AddDate(0, 0, 1)
		a := problemIDs(DailyShuffle(catalog, today))[:CandidatePoolSize]
		b := problemIDs(DailyShuffle(catalog, tomorrow))[:CandidatePoolSize]
		if !slices.Equal(a, b) {
			differing++
		}
	}
	if differing < days*95/100 {
		t.Fatalf("expected candidate pools to differ across days, only %d of %d did", differing, days)
	}
}

func TestDailyShuffleEmpty(t *testing.T) {
	if got := DailyShuffle(nil, time.Now()); len(got) != 0 {
		t.Fatalf("expected empty shuffle, got %d entries", len(got))
	}
}
