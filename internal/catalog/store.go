package catalog

import "sync/atomic"

// Store publishes the current catalog snapshot to concurrent readers. It does
// no searching and no IO: the snapshot is swapped wholesale on reload, never
// mutated in place, so readers need no locks.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store publishing the given snapshot.
func NewStore(catalog *Catalog) *Store {
	s := &Store{}
	s.current.Store(catalog)
	return s
}

// Catalog returns the currently published snapshot. The returned value must
// be treated as read-only.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Replace publishes a new snapshot. In-flight readers keep the snapshot they
// already hold.
func (s *Store) Replace(catalog *Catalog) {
	s.current.Store(catalog)
}
