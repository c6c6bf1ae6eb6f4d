package catalog

import (
	"sync"

	"github.com/atomicstack/font-picker/internal/font"
)

// Store holds the current catalog snapshot. Snapshots are rebuilt only when
// the raw catalog is replaced; the version number lets derived state key its
// memoization on catalog identity.
type Store struct {
	mu       sync.Mutex
	defaults []font.ID
	version  uint64
	snap     Snapshot
}

// NewStore creates an empty store using the supplied default allow-list.
func NewStore(defaults []font.ID) *Store {
	return &Store{defaults: append([]font.ID(nil), defaults...)}
}

// Replace rebuilds the snapshot from a fresh catalog and bumps the version.
func (s *Store) Replace(items []font.Item) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version++
	s.snap = build(font.CloneItems(items), s.defaults, s.version)
	return s.snap
}

// Snapshot returns the current snapshot. The zero snapshot (version 0) is
// returned before the first Replace.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
