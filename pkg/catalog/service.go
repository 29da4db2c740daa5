package catalog

import (
	"fmt"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
	"github.com/smith3v/lcurve/pkg/logger"
)

// Store is the part of the record store catalog mutations need.
type Store interface {
	ProblemExists(number uint, name string) (bool, error)
	InsertProblem(number uint, name, category string, now time.Time) (db.Problem, error)
}

// NewProblem is a validated, not yet stored catalog entry.
type NewProblem struct {
	Number   uint
	Name     string
	Category Category
	// History is set for entries read back from an export.
	History *PracticeHistory
}

type PracticeHistory struct {
	CreatedAt       time.Time
	LastPracticedAt time.Time
	TimesPracticed  int
}

// ParseNewProblem validates raw user input.
func ParseNewProblem(number, name, category string) (NewProblem, error) {
	n, err := ParseNumber(number)
	if err != nil {
		return NewProblem{}, err
	}
	title, err := ValidateName(name)
	if err != nil {
		return NewProblem{}, err
	}
	cat, err := ParseCategory(category)
	if err != nil {
		return NewProblem{}, err
	}
	return NewProblem{Number: n, Name: title, Category: cat}, nil
}

func AddProblem(store Store, input NewProblem, now time.Time) (db.Problem, error) {
	if input.Number == 0 {
		return db.Problem{}, ErrInvalidNumber
	}
	name, err := ValidateName(input.Name)
	if err != nil {
		return db.Problem{}, err
	}
	if !input.Category.Valid() {
		return db.Problem{}, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	exists, err := store.ProblemExists(input.Number, name)
	if err != nil {
		return db.Problem{}, err
	}
	if exists {
		return db.Problem{}, fmt.Errorf("%w: #%d %q", ErrDuplicateProblem, input.Number, name)
	}

	problem, err := store.InsertProblem(input.Number, name, string(input.Category), now)
	if err != nil {
		return db.Problem{}, err
	}
	logger.Info("problem added", "id", problem.ID, "number", problem.Number, "category", problem.Category)
	return problem, nil
}
