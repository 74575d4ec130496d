package state

import (
	"sync"
	"time"

	"github.com/five82/tabula/internal/placeholder"
)

// Snapshot represents the latest data available to the UI. The slices are
// shared with the store and must be treated as read-only; every successful
// load installs new slices, so slice identity changes exactly when data does.
type Snapshot struct {
	Data        placeholder.Dataset
	Directory   placeholder.Directory
	HasData     bool
	Loading     bool
	Generation  uint64 // latest generation started
	LastUpdated time.Time
	LastError   error
	Failures    int // consecutive failed loads
}

// Store coordinates concurrent loads with the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin starts a new load and returns its generation. Results of earlier
// generations are discarded by Commit from now on.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Generation++
	s.snapshot.Loading = true
	return s.snapshot.Generation
}

// Commit applies the outcome of load gen. It reports false, changing nothing,
// when gen has been superseded. When err is non-nil the previous dataset is
// kept whole and the error is recorded.
func (s *Store) Commit(gen uint64, ds placeholder.Dataset, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.Failures++
		return true
	}

	s.snapshot.Data = placeholder.Dataset{
		Users: cloneSlice(ds.Users),
		Posts: cloneSlice(ds.Posts),
		Todos: cloneSlice(ds.Todos),
	}
	s.snapshot.Directory = placeholder.NewDirectory(s.snapshot.Data.Users)
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.Failures = 0
	return true
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
