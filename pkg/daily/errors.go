package daily

import "errors"

var (
	// ErrStorageUnavailable means the catalog could not be read.
	ErrStorageUnavailable = errors.New("daily: storage unavailable")
	// ErrNotFound means the problem is neither stored nor on today's shortlist.
	ErrNotFound = errors.New("daily: problem not found")
	// ErrPersistenceFailure means a completion could not be written.
	ErrPersistenceFailure = errors.New("daily: failed to persist completion")
)
