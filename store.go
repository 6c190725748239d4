package uiprefs

import "sync/atomic"

// Store holds the most recently applied preference bundle for synchronous
// read access. Reads are lock-free and safe from any goroutine; writes
// happen only from the single poll step. The zero value is ready to use
// and reports "no preference" for every field.
type Store struct {
	current atomic.Pointer[Preferences]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the latest known preference bundle.
func (s *Store) Current() Preferences {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return Preferences{}
}

// Replace swaps in a new bundle wholesale. There is no partial-field
// mutation; the snapshot is always a complete bundle.
func (s *Store) Replace(p Preferences) {
	s.current.Store(&p)
}
