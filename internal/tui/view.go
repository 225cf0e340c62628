package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tinytelemetry/monlomon/internal/logparse"
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/navigation"
)

const appTitle = "MONLOMON"

// View renders the viewer
func (m *ViewerModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	if m.height < 10 || m.width < 60 {
		return "Terminal too small. Resize to at least 60x10."
	}

	listW, detailW, paneH := m.paneSizes()
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderListPane(listW, paneH),
		m.renderDetailPane(detailW, paneH),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		panes,
		m.renderLegend(),
		m.renderStatusLine(),
	)
}

func (m *ViewerModel) renderTitle() string {
	title := titleStyle.Render(appTitle)
	if m.source != "" {
		title += " " + helpStyle.Render(m.source)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title)
}

func (m *ViewerModel) paneStyle(pane navigation.Pane, width, height int) lipgloss.Style {
	style := sectionStyle
	if m.snap.Focus == pane {
		style = activeSectionStyle
	}
	return style.Width(width - 2).Height(height - 2)
}

func (m *ViewerModel) renderListPane(width, height int) string {
	header := paneTitleStyle.Render(fmt.Sprintf("Logs %s/%s",
		humanize.Comma(int64(m.snap.Visible)),
		humanize.Comma(int64(m.snap.Total))))

	var body string
	switch {
	case m.snap.Notice != "":
		body = noticeStyle.Render(m.snap.Notice)
	case m.snap.Visible == 0:
		body = helpStyle.Render("All entries are filtered out")
	default:
		body = m.table.View()
	}
	return m.paneStyle(navigation.PaneList, width, height).Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (m *ViewerModel) renderDetailPane(width, height int) string {
	title := "Details"
	if m.snap.HasSelection {
		title = fmt.Sprintf("Details #%d (%s)", m.snap.Selected, m.detailFormat)
	}
	header := paneTitleStyle.Render(title)
	return m.paneStyle(navigation.PaneDetail, width, height).Render(lipgloss.JoinVertical(lipgloss.Left, header, m.detail.View()))
}

// renderLegend shows the key hints and which severities are visible.
func (m *ViewerModel) renderLegend() string {
	var flags []string
	for _, sev := range model.Severities {
		word := sev.String()
		label := "[" + logparse.Abbreviation(sev) + "]" + word[1:]
		if m.snap.Flags[sev] {
			flags = append(flags, flagOnStyle.Foreground(severityColor(sev)).Render(label))
		} else {
			flags = append(flags, flagOffStyle.Render(label))
		}
	}
	legend := m.help.ShortHelpView(m.keys.ShortHelp()) + "  " + strings.Join(flags, " ")
	return lipgloss.NewStyle().MaxWidth(m.width).Render(legend)
}

func (m *ViewerModel) renderStatusLine() string {
	left := " " + m.snap.Focus.String()
	if n := len(m.snap.Excluded); n > 0 {
		left += fmt.Sprintf(" | %d excluded", n)
	}
	if m.status != "" {
		left += " | " + m.status
	}
	right := fmt.Sprintf("%s | ? help ", m.detailFormat)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return statusStyle.Width(m.width).MaxWidth(m.width).Render(left)
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}
