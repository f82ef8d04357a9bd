// Package result holds the current comparison result.
package result

import (
	"slices"
	"sync"

	"github.com/colonyops/seqcmp/internal/core/compare"
)

// Reader is the read-only view of the current result.
type Reader interface {
	// Current returns the current result and whether one exists.
	Current() (compare.Result, bool)
}

// Store is a single-slot holder for the most recent successful result. The
// slot is empty until the first Set, replaced wholesale by each Set, and
// emptied by Clear.
type Store struct {
	mu      sync.RWMutex
	current *compare.Result
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the current result. The store keeps its own copy of the
// difference list.
func (s *Store) Set(r compare.Result) {
	r.DifferencesDetail = slices.Clone(r.DifferencesDetail)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &r
}

// Clear empties the slot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *Store) Current() (compare.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return compare.Result{}, false
	}
	r := *s.current
	r.DifferencesDetail = slices.Clone(r.DifferencesDetail)
	return r, true
}
