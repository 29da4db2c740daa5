package daily

import (
	"time"

	"github.com/smith3v/lcurve/pkg/db"
)

const summaryWindowDays = 7

type DayCount struct {
	Date  string
	Count int
}

type Summary struct {
	CatalogSize    int
	NeverPracticed int
	TotalPractices int
	// LastWeek is oldest first and ends with today.
	LastWeek []DayCount
	// Streak counts consecutive days with a completion, ending today, or
	// yesterday when nothing has been completed yet today.
	Streak      int
	MostOverdue *Pick
}

// Summarize aggregates practice history. Events are counted on the practice
// day stored with them; the week window is calendar days in now's location.
func Summarize(catalog []db.Problem, events []db.PracticeEvent, now time.Time) Summary {
	summary := Summary{CatalogSize: len(catalog)}

	for _, problem := range catalog {
		if problem.TimesPracticed <= 0 {
			summary.NeverPracticed++
		}
		summary.TotalPractices += max(problem.TimesPracticed, 0)

		score := Score(problem, now)
		if summary.MostOverdue == nil || score > summary.MostOverdue.Score {
			summary.MostOverdue = &Pick{Problem: problem, Score: score}
		}
	}

	perDay := make(map[string]int)
	for _, event := range events {
		perDay[event.Day(now.Location())]++
	}

	summary.LastWeek = make([]DayCount, 0, summaryWindowDays)
	for offset := summaryWindowDays - 1; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset).Format(SeedLayout)
		summary.LastWeek = append(summary.LastWeek, DayCount{Date: date, Count: perDay[date]})
	}

	cursor := now
	if perDay[cursor.Format(SeedLayout)] == 0 {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for perDay[cursor.Format(SeedLayout)] > 0 {
		summary.Streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return summary
}
