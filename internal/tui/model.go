package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/navigation"
	"github.com/tinytelemetry/monlomon/internal/session"
)

// Options configures a ViewerModel.
type Options struct {
	DetailFormat       DetailFormat
	ReverseScrollWheel bool
	// Plain disables syntax coloring in the detail pane.
	Plain bool
	// Source names the input in the title bar.
	Source string
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error
}

// ViewerModel is the log viewer screen: a table of visible entries on the
// left and the selected entry's payload on the right.
type ViewerModel struct {
	ModalStackState

	session *session.Session
	snap    session.Snapshot

	keys   KeyMap
	help   help.Model
	table  table.Model
	detail viewport.Model

	width  int
	height int

	detailFormat       DetailFormat
	reverseScrollWheel bool
	plain              bool
	source             string
	logger             zerolog.Logger
	copyToClipboard    func(string) error

	// status is a one-shot message for the status line, cleared on the
	// next key press.
	status string

	// navTo is a page switch requested by the last key press.
	navTo string
}

// NewViewerModel creates a viewer over s.
func NewViewerModel(s *session.Session, opts Options) *ViewerModel {
	t := table.New(
		table.WithColumns(columnsFor(100)),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(ColorBlue)
	st.Selected = st.Selected.Foreground(ColorWhite).Background(ColorNavy).Bold(true)
	t.SetStyles(st)

	format := opts.DetailFormat
	if format == "" {
		format = DetailJSON
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	copyFn := opts.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &ViewerModel{
		session:            s,
		keys:               DefaultKeyMap(),
		help:               help.New(),
		table:              t,
		detail:             viewport.New(40, 20),
		detailFormat:       format,
		reverseScrollWheel: opts.ReverseScrollWheel,
		plain:              opts.Plain,
		source:             opts.Source,
		logger:             logger,
		copyToClipboard:    copyFn,
	}
	m.sync()
	return m
}

// columnsFor splits width across the six table columns.
func columnsFor(width int) []table.Column {
	percent := []int{6, 24, 12, 10, 12, 36}
	usable := max(width-len(percent)*2, len(percent))
	cols := make([]table.Column, len(model.TableHeaders))
	for i, title := range model.TableHeaders {
		cols[i] = table.Column{Title: title, Width: max(usable*percent[i]/100, 1)}
	}
	return cols
}

func (m *ViewerModel) modalContext() ModalContext {
	return ModalContext{ReverseScrollWheel: m.reverseScrollWheel}
}

// sync pulls a fresh snapshot from the session into the widgets.
func (m *ViewerModel) sync() {
	m.snap = m.session.Snapshot()

	rows := make([]table.Row, len(m.snap.Rows))
	for i, r := range m.snap.Rows {
		rows[i] = table.Row(r)
	}
	m.table.SetRows(rows)
	if m.snap.HasSelection {
		m.table.SetCursor(m.snap.Selected)
	} else {
		m.table.SetCursor(0)
	}
	if m.snap.Focus == navigation.PaneList {
		m.table.Focus()
	} else {
		m.table.Blur()
	}

	m.detail.SetContent(m.detailContent())
	m.detail.SetYOffset(m.snap.OffsetRow)
}

func (m *ViewerModel) detailContent() string {
	if !m.snap.HasSelection {
		return helpStyle.Render(model.NoSelectionPlaceholder)
	}
	out, err := renderDetail(m.snap.Attributes, m.detailFormat, !m.plain)
	if err != nil {
		m.logger.Warn().Err(err).Str("format", string(m.detailFormat)).Msg("rendering detail")
		return m.snap.Detail
	}
	return out
}

// Init initializes the model
func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

// Snapshot returns the state last pulled from the session.
func (m *ViewerModel) Snapshot() session.Snapshot {
	return m.snap
}

// ViewerPage adapts ViewerModel to the Page interface.
type ViewerPage struct {
	Model *ViewerModel
}

// NewViewerPage wraps a ViewerModel as a Page.
func NewViewerPage(m *ViewerModel) *ViewerPage {
	return &ViewerPage{Model: m}
}

const (
	viewerPageID = "viewer"
	detailPageID = "detail"
)

func (p *ViewerPage) ID() string { return viewerPageID }

func (p *ViewerPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *ViewerPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	if p.Model.navTo == "" {
		return cmd, nil
	}
	nav := &PageNav{PageID: p.Model.navTo}
	p.Model.navTo = ""
	return cmd, nav
}

func (p *ViewerPage) View(width, height int) string {
	if width != p.Model.width || height != p.Model.height {
		p.Model.resize(width, height)
	}
	return p.Model.View()
}
