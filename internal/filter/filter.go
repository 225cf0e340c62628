// Package filter derives the visible view from the record store.
//
// A State holds the four severity flags and the set of excluded message
// texts. Recompute applies them to a store in one pass; it is pure, so the
// same store and State always give the same view.
package filter

import (
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/store"
)

// State is the active filter set. The zero value hides everything; use
// NewState for the initial all-visible state.
type State struct {
	severityEnabled map[model.Severity]bool
	excluded        map[string]struct{}
	excludedOrder   []string // insertion order, for display
}

// NewState returns a State with every severity enabled and no exclusions.
func NewState() *State {
	s := &State{
		severityEnabled: make(map[model.Severity]bool, len(model.Severities)),
		excluded:        make(map[string]struct{}),
	}
	for _, sev := range model.Severities {
		s.severityEnabled[sev] = true
	}
	return s
}

// Enabled reports whether entries of sev may be shown. SeverityUnknown has no
// flag and is never enabled.
func (s *State) Enabled(sev model.Severity) bool {
	if !sev.Known() {
		return false
	}
	return s.severityEnabled[sev]
}

// Toggle flips the flag for sev. Toggling SeverityUnknown is a no-op.
func (s *State) Toggle(sev model.Severity) {
	if !sev.Known() {
		return
	}
	s.severityEnabled[sev] = !s.severityEnabled[sev]
}

// SetEnabled sets the flag for sev.
func (s *State) SetEnabled(sev model.Severity, enabled bool) {
	if !sev.Known() {
		return
	}
	s.severityEnabled[sev] = enabled
}

// Flags returns a copy of the four severity flags.
func (s *State) Flags() map[model.Severity]bool {
	flags := make(map[model.Severity]bool, len(model.Severities))
	for _, sev := range model.Severities {
		flags[sev] = s.severityEnabled[sev]
	}
	return flags
}

// Exclude adds msg to the exclusion set. It returns false if msg was already
// excluded, in which case nothing changes.
func (s *State) Exclude(msg string) bool {
	if _, ok := s.excluded[msg]; ok {
		return false
	}
	s.excluded[msg] = struct{}{}
	s.excludedOrder = append(s.excludedOrder, msg)
	return true
}

// IsExcluded reports whether msg is in the exclusion set.
func (s *State) IsExcluded(msg string) bool {
	_, ok := s.excluded[msg]
	return ok
}

// Excluded returns the excluded messages in the order they were added.
func (s *State) Excluded() []string {
	return append([]string(nil), s.excludedOrder...)
}

// Reset clears the exclusion set. Severity flags are untouched.
func (s *State) Reset() {
	clear(s.excluded)
	s.excludedOrder = nil
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := NewState()
	for sev, enabled := range s.severityEnabled {
		c.severityEnabled[sev] = enabled
	}
	for _, msg := range s.excludedOrder {
		c.Exclude(msg)
	}
	return c
}

// Allows is the view predicate: the entry's severity flag is enabled and its
// message is not excluded.
func Allows(s *State, e model.LogEntry) bool {
	if s == nil {
		return false
	}
	return s.Enabled(e.Severity) && !s.IsExcluded(e.Message)
}

// Recompute returns, in store order, every entry that s allows. It always
// rebuilds the full view; an empty store yields an empty, non-nil view.
func Recompute(st *store.Store, s *State) []model.LogEntry {
	view := make([]model.LogEntry, 0)
	if st == nil {
		return view
	}
	st.Each(func(_ int, e model.LogEntry) bool {
		if Allows(s, e) {
			view = append(view, e)
		}
		return true
	})
	return view
}
