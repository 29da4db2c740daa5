package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProblemNotFound = errors.New("problem not found")

// Repository is the record store behind the problem catalog.
type Repository struct {
	db *gorm.DB
}

func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

func (r *Repository) GetAllProblems() ([]Problem, error) {
	var problems []Problem
	if err := r.db.Order("number ASC, id ASC").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// ProblemExists reports whether either the number or the name is taken.
func (r *Repository) ProblemExists(number uint, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&Problem{}).
		Where("number = ? OR name = ?", number, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) InsertProblem(number uint, name, category string, now time.Time) (Problem, error) {
	now = now.UTC()
	problem := Problem{
		ID:              uuid.NewString(),
		Number:          number,
		Name:            name,
		Category:        category,
		CreatedAt:       now,
		LastPracticedAt: now,
		TimesPracticed:  0,
	}
	if err := r.db.Create(&problem).Error; err != nil {
		return Problem{}, err
	}
	return problem, nil
}

func (r *Repository) FindProblem(id string) (*Problem, error) {
	var problem Problem
	err := r.db.Where("id = ?", id).First(&problem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProblemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *Repository) FindProblemByNumber(number uint) (*Problem, error) {
	var problem Problem
	err := r.db.Where("number = ?", number).First(&problem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProblemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// UpdateProblemAsCompleted records one practice of the problem. The counter
// increment, the timestamp and the practice log row commit together. The
// practice day is the calendar date of now in now's location.
func (r *Repository) UpdateProblemAsCompleted(id string, now time.Time) error {
	practicedOn := PracticeDay(now)
	now = now.UTC()
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Problem{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"times_practiced":   gorm.Expr("times_practiced + ?", 1),
				"last_practiced_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProblemNotFound
		}
		event := PracticeEvent{
			ProblemID:   id,
			PracticedAt: now,
			PracticedOn: practicedOn,
		}
		return tx.Create(&event).Error
	})
}

// SetPracticeHistory overwrites the history columns of a stored problem.
func (r *Repository) SetPracticeHistory(id string, createdAt, lastPracticedAt time.Time, timesPracticed int) error {
	result := r.db.Model(&Problem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"created_at":        createdAt.UTC(),
			"last_practiced_at": lastPracticedAt.UTC(),
			"times_practiced":   timesPracticed,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProblemNotFound
	}
	return nil
}

func (r *Repository) PracticeEventsSince(since time.Time) ([]PracticeEvent, error) {
	var events []PracticeEvent
	if err := r.db.
		Where("practiced_at >= ?", since.UTC()).
		Order("practiced_at ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// PracticeDay is the calendar date of t in t's location, stored as midnight
// UTC so every driver reads back the same year, month and day.
func PracticeDay(t time.Time) datatypes.Date {
	year, month, day := t.Date()
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Day formats the practice day as 2006-01-02. Rows without one fall back to
// the date of PracticedAt in location.
func (e PracticeEvent) Day(location *time.Location) string {
	if on := time.Time(e.PracticedOn); !on.IsZero() {
		return on.UTC().Format("2006-01-02")
	}
	if location == nil {
		location = time.UTC
	}
	return e.PracticedAt.In(location).Format("2006-01-02")
}

// Transaction runs fn against a repository bound to a single transaction.
func (r *Repository) Transaction(fn func(tx *Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}
