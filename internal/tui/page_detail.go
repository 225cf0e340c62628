package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailPage shows the selected entry's payload across the whole terminal.
// It shares the viewer's session, so the entry is whatever the list selects.
type DetailPage struct {
	viewer   *ViewerModel
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailPage creates the full-screen detail page for viewer.
func NewDetailPage(viewer *ViewerModel) *DetailPage {
	return &DetailPage{viewer: viewer, viewport: viewport.New(80, 20)}
}

func (p *DetailPage) ID() string { return detailPageID }

// Init reloads the payload each time the page is entered.
func (p *DetailPage) Init() tea.Cmd {
	p.refresh()
	p.viewport.GotoTop()
	return nil
}

func (p *DetailPage) refresh() {
	p.viewport.SetContent(p.viewer.detailContent())
}

func (p *DetailPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keys := p.viewer.keys
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		p.viewer.resize(msg.Width, msg.Height)
		return nil, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.ForceQuit):
			return tea.Quit, nil
		case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Expand), key.Matches(msg, keys.Quit):
			return nil, &PageNav{PageID: viewerPageID}
		case key.Matches(msg, keys.DetailFormat):
			p.viewer.detailFormat = p.viewer.detailFormat.Next()
			p.viewer.sync()
			p.refresh()
			return nil, nil
		case key.Matches(msg, keys.Copy):
			p.viewer.copySelected()
			return nil, nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd, nil
}

func (p *DetailPage) resize(width, height int) {
	p.width, p.height = width, height
	p.viewport.Width = max(width-2, 1)
	p.viewport.Height = max(height-5, 1)
}

func (p *DetailPage) View(width, height int) string {
	if width != p.width || height != p.height {
		p.resize(width, height)
	}
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	snap := p.viewer.snap
	title := titleStyle.Render(appTitle) + " " +
		paneTitleStyle.Render(fmt.Sprintf("Details #%d (%s)", snap.Selected, p.viewer.detailFormat))
	body := activeSectionStyle.Width(width - 2).Render(p.viewport.View())
	legend := p.viewer.help.ShortHelpView([]key.Binding{
		p.viewer.keys.Escape, p.viewer.keys.Up, p.viewer.keys.Down,
		p.viewer.keys.DetailFormat, p.viewer.keys.Copy,
	})
	status := fmt.Sprintf(" %d%%", int(p.viewport.ScrollPercent()*100))
	if p.viewer.status != "" {
		status += " | " + p.viewer.status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(width).Render(title),
		body,
		lipgloss.NewStyle().MaxWidth(width).Render(legend),
		statusStyle.Width(width).MaxWidth(width).Render(status),
	)
}
