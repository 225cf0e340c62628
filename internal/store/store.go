package store

import (
	"errors"
	"sync"

	"github.com/tinytelemetry/monlomon/internal/model"
)

// ErrSealed is returned by Append once ingestion has finished.
var ErrSealed = errors.New("store: append to sealed store")

// Store is the append-only, insertion-ordered collection of every decoded
// entry of a session. It accepts appends until Seal; afterwards it is
// read-only and safe to share.
type Store struct {
	mu      sync.RWMutex
	entries []model.LogEntry
	sealed  bool
}

// New creates an empty, unsealed store.
func New() *Store {
	return &Store{}
}

// NewSealed builds a sealed store holding entries, in order.
func NewSealed(entries ...model.LogEntry) *Store {
	s := &Store{entries: append([]model.LogEntry(nil), entries...)}
	s.sealed = true
	return s
}

// Append adds an entry at the end of the store.
func (s *Store) Append(entry model.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return ErrSealed
	}
	s.entries = append(s.entries, entry)
	return nil
}

// Seal ends ingestion. It is idempotent.
func (s *Store) Seal() {
	s.mu.Lock()
	s.sealed = true
	s.mu.Unlock()
}

// Sealed reports whether ingestion has ended.
func (s *Store) Sealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sealed
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// At returns the entry at position i.
func (s *Store) At(i int) (model.LogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.entries) {
		return model.LogEntry{}, false
	}
	return s.entries[i], true
}

// Each calls fn for every entry in insertion order until fn returns false.
func (s *Store) Each(fn func(i int, entry model.LogEntry) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, e := range s.entries {
		if !fn(i, e) {
			return
		}
	}
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []model.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.LogEntry(nil), s.entries...)
}

// SeverityCounts tallies entries per severity. Unknown levels are counted
// under model.SeverityUnknown.
func (s *Store) SeverityCounts() map[model.Severity]int {
	counts := make(map[model.Severity]int, len(model.Severities)+1)
	s.Each(func(_ int, e model.LogEntry) bool {
		counts[e.Severity]++
		return true
	})
	return counts
}
