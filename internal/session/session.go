// Package session ties the record store, the filter state and the
// navigation machine together. It is the only thing a presenter talks to:
// intents go in, a Snapshot comes out.
package session

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tinytelemetry/monlomon/internal/filter"
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/navigation"
	"github.com/tinytelemetry/monlomon/internal/store"
)

// Intent is a user action that changes session state.
type Intent int

const (
	IntentNone Intent = iota
	IntentNext
	IntentPrevious
	IntentFirst
	IntentLast
	IntentSwitchPane
	IntentConfirm
	IntentToggleInformational
	IntentToggleWarning
	IntentToggleError
	IntentToggleFatal
	IntentExcludeSelected
	IntentResetExclusions
)

var intentNames = map[Intent]string{
	IntentNone:                "none",
	IntentNext:                "next",
	IntentPrevious:            "previous",
	IntentFirst:               "first",
	IntentLast:                "last",
	IntentSwitchPane:          "switch-pane",
	IntentConfirm:             "confirm",
	IntentToggleInformational: "toggle-informational",
	IntentToggleWarning:       "toggle-warning",
	IntentToggleError:         "toggle-error",
	IntentToggleFatal:         "toggle-fatal",
	IntentExcludeSelected:     "exclude-selected",
	IntentResetExclusions:     "reset-exclusions",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "intent(" + strconv.Itoa(int(i)) + ")"
}

// ToggleIntent returns the toggle intent for sev.
func ToggleIntent(sev model.Severity) Intent {
	switch sev {
	case model.SeverityInformational:
		return IntentToggleInformational
	case model.SeverityWarning:
		return IntentToggleWarning
	case model.SeverityError:
		return IntentToggleError
	case model.SeverityFatal:
		return IntentToggleFatal
	default:
		return IntentNone
	}
}

// Session is the interactive state over one sealed store. It is not safe for
// concurrent use; the event loop owns it.
type Session struct {
	store   *store.Store
	filters *filter.State
	view    []model.LogEntry
	nav     *navigation.Machine
	logger  zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for intent tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithFilter starts the session from fs instead of the all-visible state.
func WithFilter(fs *filter.State) Option {
	return func(s *Session) {
		if fs != nil {
			s.filters = fs.Clone()
		}
	}
}

// New builds a session over st and computes the initial view.
func New(st *store.Store, opts ...Option) *Session {
	if st == nil {
		st = store.NewSealed()
	}
	s := &Session{
		store:   st,
		filters: filter.NewState(),
		nav:     navigation.New(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

func (s *Session) recompute() {
	s.view = filter.Recompute(s.store, s.filters)
	s.nav.Reset(len(s.view))
}

func (s *Session) Next()       { s.nav.Next() }
func (s *Session) Previous()   { s.nav.Previous() }
func (s *Session) First()      { s.nav.First() }
func (s *Session) Last()       { s.nav.Last() }
func (s *Session) SwitchPane() { s.nav.SwitchPane() }

// Confirm returns the selected view index and entry. It does not change
// state.
func (s *Session) Confirm() (int, model.LogEntry, bool) {
	e, ok := s.SelectedEntry()
	if !ok {
		return -1, model.LogEntry{}, false
	}
	i, _ := s.nav.Selected()
	return i, e, true
}

// ToggleSeverity flips the flag for sev and recomputes the view.
func (s *Session) ToggleSeverity(sev model.Severity) {
	if !sev.Known() {
		return
	}
	s.filters.Toggle(sev)
	s.logger.Debug().Str("severity", sev.String()).Bool("enabled", s.filters.Enabled(sev)).Msg("severity toggled")
	s.recompute()
}

// ExcludeSelected hides every entry whose message equals the selected
// entry's message. It returns false when nothing is selected or the message
// is already excluded; the view is left untouched in that case.
func (s *Session) ExcludeSelected() bool {
	e, ok := s.SelectedEntry()
	if !ok {
		return false
	}
	if !s.filters.Exclude(e.Message) {
		return false
	}
	s.logger.Debug().Str("message", e.Message).Msg("message excluded")
	s.recompute()
	return true
}

// ResetExclusions clears the exclusion set and recomputes the view.
func (s *Session) ResetExclusions() {
	s.filters.Reset()
	s.logger.Debug().Msg("exclusions reset")
	s.recompute()
}

// Dispatch applies intent and reports whether it was recognised.
func (s *Session) Dispatch(intent Intent) bool {
	switch intent {
	case IntentNext:
		s.Next()
	case IntentPrevious:
		s.Previous()
	case IntentFirst:
		s.First()
	case IntentLast:
		s.Last()
	case IntentSwitchPane:
		s.SwitchPane()
	case IntentConfirm:
		s.Confirm()
	case IntentToggleInformational:
		s.ToggleSeverity(model.SeverityInformational)
	case IntentToggleWarning:
		s.ToggleSeverity(model.SeverityWarning)
	case IntentToggleError:
		s.ToggleSeverity(model.SeverityError)
	case IntentToggleFatal:
		s.ToggleSeverity(model.SeverityFatal)
	case IntentExcludeSelected:
		s.ExcludeSelected()
	case IntentResetExclusions:
		s.ResetExclusions()
	default:
		return false
	}
	return true
}

// SelectedEntry returns the entry under the cursor.
func (s *Session) SelectedEntry() (model.LogEntry, bool) {
	i, ok := s.nav.Selected()
	if !ok || i < 0 || i >= len(s.view) {
		return model.LogEntry{}, false
	}
	return s.view[i], true
}

// View returns a copy of the visible entries.
func (s *Session) View() []model.LogEntry {
	return append([]model.LogEntry(nil), s.view...)
}

// Filters returns a copy of the active filter state.
func (s *Session) Filters() *filter.State {
	return s.filters.Clone()
}

// Snapshot is everything a presenter needs to draw one frame.
type Snapshot struct {
	Headers      []string
	Rows         [][]string
	Selected     int // -1 when nothing is selected
	HasSelection bool
	Focus        navigation.Pane
	OffsetRow    int
	OffsetCol    int
	Detail       string
	Attributes   any
	Flags        map[model.Severity]bool
	Excluded     []string
	Total        int
	Visible      int
	Notice       string
}

// Snapshot renders the current state for a presenter.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Headers:  append([]string(nil), model.TableHeaders...),
		Rows:     Rows(s.view),
		Selected: -1,
		Focus:    s.nav.Focus(),
		Detail:   model.NoSelectionPlaceholder,
		Flags:    s.filters.Flags(),
		Excluded: s.filters.Excluded(),
		Total:    s.store.Len(),
		Visible:  len(s.view),
	}
	snap.OffsetRow, snap.OffsetCol = s.nav.Offset()
	if i, ok := s.nav.Selected(); ok && i < len(s.view) {
		snap.Selected = i
		snap.HasSelection = true
		snap.Attributes = s.view[i].Attributes
		snap.Detail = FormatDetail(s.view[i].Attributes)
	}
	if snap.Total == 0 {
		snap.Notice = model.NoLogsNotice
	}
	return snap
}

// Rows converts entries into table rows, numbered by view position.
func Rows(view []model.LogEntry) [][]string {
	rows := make([][]string, 0, len(view))
	for i, e := range view {
		rows = append(rows, Row(i, e))
	}
	return rows
}

// Row is one table row: index, time, severity, component, context, message.
func Row(i int, e model.LogEntry) []string {
	return []string{
		strconv.Itoa(i),
		e.Timestamp,
		e.SeverityLabel(),
		e.Component,
		e.Context,
		e.Message,
	}
}

// FormatDetail pretty-prints an attribute payload as indented JSON.
func FormatDetail(attrs any) string {
	out, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return model.NoSelectionPlaceholder
	}
	return string(out)
}

// Counts holds per-severity totals for the store and for the current view.
type Counts struct {
	Store map[model.Severity]int
	View  map[model.Severity]int
}

// Counts tallies severities in the store and in the view. Unknown levels are
// counted under model.SeverityUnknown.
func (s *Session) Counts() Counts {
	view := make(map[model.Severity]int, len(model.Severities))
	for _, e := range s.view {
		view[e.Severity]++
	}
	return Counts{Store: s.store.SeverityCounts(), View: view}
}
