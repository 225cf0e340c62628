package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/monlomon/internal/session"
)

// KeyMap defines all viewer key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	Enter      key.Binding
	SwitchPane key.Binding

	// Filters
	ToggleInfo    key.Binding
	ToggleWarning key.Binding
	ToggleError   key.Binding
	ToggleFatal   key.Binding
	Exclude       key.Binding
	Reset         key.Binding

	// Actions
	Counts       key.Binding
	DetailFormat key.Binding
	Copy         key.Binding
	Expand       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "c"),
			key.WithHelp("q/c", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),

		ToggleInfo: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "informational"),
		),
		ToggleWarning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning"),
		),
		ToggleError: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error"),
		),
		ToggleFatal: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fatal"),
		),
		Exclude: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "exclude message"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset exclusions"),
		),

		Counts: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "severity counts"),
		),
		DetailFormat: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "json/yaml"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy payload"),
		),
		Expand: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "full-screen detail"),
		),
	}
}

// ShortHelp is the legend shown under the panes.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Down, k.Up, k.SwitchPane, k.Exclude, k.Reset, k.Help}
}

// FullHelp is the grouped listing shown in the help modal.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Home, k.End, k.Enter, k.SwitchPane},
		{k.ToggleInfo, k.ToggleWarning, k.ToggleError, k.ToggleFatal, k.Exclude, k.Reset},
		{k.Counts, k.DetailFormat, k.Copy, k.Expand, k.Help, k.Escape, k.Quit, k.ForceQuit},
	}
}

// intentFor maps a key press onto a session intent. Keys with no session
// meaning return session.IntentNone.
func (k KeyMap) intentFor(msg tea.KeyMsg) session.Intent {
	switch {
	case key.Matches(msg, k.Down):
		return session.IntentNext
	case key.Matches(msg, k.Up):
		return session.IntentPrevious
	case key.Matches(msg, k.Home):
		return session.IntentFirst
	case key.Matches(msg, k.End):
		return session.IntentLast
	case key.Matches(msg, k.SwitchPane):
		return session.IntentSwitchPane
	case key.Matches(msg, k.Enter):
		return session.IntentConfirm
	case key.Matches(msg, k.ToggleInfo):
		return session.IntentToggleInformational
	case key.Matches(msg, k.ToggleWarning):
		return session.IntentToggleWarning
	case key.Matches(msg, k.ToggleError):
		return session.IntentToggleError
	case key.Matches(msg, k.ToggleFatal):
		return session.IntentToggleFatal
	case key.Matches(msg, k.Exclude):
		return session.IntentExcludeSelected
	case key.Matches(msg, k.Reset):
		return session.IntentResetExclusions
	default:
		return session.IntentNone
	}
}
