package daily

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
	"github.com/smith3v/lcurve/pkg/logger"
)

// Store is the record store a Session reads the catalog from and writes
// completions to.
type Store interface {
	GetAllProblems() ([]db.Problem, error)
	UpdateProblemAsCompleted(problemID string, now time.Time) error
}

// Session owns the in-memory catalog snapshot and the cached shortlist for
// one user-facing loop. It is not safe for concurrent use.
type Session struct {
	store    Store
	now      func() time.Time
	location *time.Location

	catalog       []db.Problem
	loaded        bool
	shortlist     []Pick
	shortlistDate string
	stale         bool
}

// NewSession binds a session to store. The calendar date that seeds the
// shortlist is taken in location (UTC when nil).
func NewSession(store Store, location *time.Location, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &Session{
		store:    store,
		now:      now,
		location: location,
	}
}

func (s *Session) clock() time.Time {
	return s.now().In(s.location)
}

// Date is the seed string of the current calendar date.
func (s *Session) Date() string {
	return SeedString(s.clock())
}

// Refresh reloads the catalog snapshot. On failure the previous snapshot
// and shortlist are kept.
func (s *Session) Refresh() error {
	problems, err := s.store.GetAllProblems()
	if err != nil {
		logger.Error("failed to load problem catalog", "error", err)
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	s.catalog = problems
	s.loaded = true
	s.stale = true
	return nil
}

// Catalog returns a copy of the current snapshot, loading it on first use.
func (s *Session) Catalog() ([]db.Problem, error) {
	if !s.loaded {
		if err := s.Refresh(); err != nil {
			return nil, err
		}
	}
	return slices.Clone(s.catalog), nil
}

// Today returns the shortlist for the current calendar date, recomputing it
// when nothing is cached, the cache is stale, or the date has changed.
func (s *Session) Today() ([]Pick, error) {
	if !s.loaded {
		if err := s.Refresh(); err != nil {
			return nil, err
		}
	}
	now := s.clock()
	date := SeedString(now)
	if s.shortlist == nil || s.stale || date != s.shortlistDate {
		s.shortlist = SelectToday(s.catalog, now)
		s.shortlistDate = date
		s.stale = false
		logger.Debug("shortlist computed", "date", date, "catalog", len(s.catalog), "picked", len(s.shortlist))
	}
	return slices.Clone(s.shortlist), nil
}

// Tick recomputes the shortlist when the calendar date has moved past the
// cached one and reports whether it did.
func (s *Session) Tick() (bool, error) {
	if s.shortlistDate != "" && s.Date() == s.shortlistDate {
		return false, nil
	}
	if err := s.Refresh(); err != nil {
		return false, err
	}
	if _, err := s.Today(); err != nil {
		return false, err
	}
	return true, nil
}

// MarkComplete records a practice of a shortlisted problem and invalidates
// the shortlist. Nothing changes in memory when the write fails.
func (s *Session) MarkComplete(problemID string) error {
	shortlist, err := s.Today()
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(shortlist, func(p Pick) bool { return p.Problem.ID == problemID }) {
		return fmt.Errorf("%w: %s is not on the shortlist for %s", ErrNotFound, problemID, s.shortlistDate)
	}

	now := s.clock()
	if err := s.store.UpdateProblemAsCompleted(problemID, now); err != nil {
		if errors.Is(err, db.ErrProblemNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		logger.Error("failed to record completion", "problem_id", problemID, "error", err)
		return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	s.stale = true
	if err := s.Refresh(); err != nil {
		logger.Warn("reload after completion failed, applying completion locally", "problem_id", problemID, "error", err)
		s.applyCompletion(problemID, now)
	}
	logger.Info("problem completed", "problem_id", problemID, "date", SeedString(now))
	return nil
}

func (s *Session) applyCompletion(problemID string, now time.Time) {
	for i := range s.catalog {
		if s.catalog[i].ID == problemID {
			s.catalog[i].TimesPracticed++
			s.catalog[i].LastPracticedAt = now
		}
	}
	s.stale = true
}
