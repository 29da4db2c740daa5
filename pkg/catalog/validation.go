package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidNumber    = errors.New("problem number must be a positive integer")
	ErrEmptyName        = errors.New("problem name must not be empty")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrDuplicateProblem = errors.New("problem with the same number or name already exists")
	ErrInvalidHistory   = errors.New("invalid practice history")
)

func ParseNumber(value string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return uint(n), nil
}

func ValidateName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// ParseHistory reads the created_at, last_practiced_at and times_practiced
// export columns. All blank means no history.
func ParseHistory(createdAt, lastPracticedAt, timesPracticed string) (*PracticeHistory, error) {
	createdAt = strings.TrimSpace(createdAt)
	lastPracticedAt = strings.TrimSpace(lastPracticedAt)
	timesPracticed = strings.TrimSpace(timesPracticed)
	if createdAt == "" && lastPracticedAt == "" && timesPracticed == "" {
		return nil, nil
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: created_at %q", ErrInvalidHistory, createdAt)
	}
	last, err := time.Parse(time.RFC3339, lastPracticedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: last_practiced_at %q", ErrInvalidHistory, lastPracticedAt)
	}
	if last.Before(created) {
		return nil, fmt.Errorf("%w: last practiced before created", ErrInvalidHistory)
	}
	times, err := strconv.Atoi(timesPracticed)
	if err != nil || times < 0 {
		return nil, fmt.Errorf("%w: times_practiced %q", ErrInvalidHistory, timesPracticed)
	}
	return &PracticeHistory{CreatedAt: created, LastPracticedAt: last, TimesPracticed: times}, nil
}
